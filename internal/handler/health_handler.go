package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// 稼働確認とDB疎通チェック
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DBTestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/api/hello", h.hello)
	e.GET("/test", h.testDatabase)
}

func (h *HealthHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Jewellery API running"})
}

func (h *HealthHandler) hello(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to the jewellery store"})
}

// DBに実際にpingして状態を返す（デプロイ確認用）
func (h *HealthHandler) testDatabase(c echo.Context) error {
	res := DBTestResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		res.DatabaseURL = "set"
	} else {
		res.DatabaseURL = "not set"
	}
	res.DatabaseName = os.Getenv("POSTGRES_DB")

	if h.db == nil {
		return c.JSON(http.StatusOK, res)
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		res.Database = "error: " + err.Error()
		return c.JSON(http.StatusOK, res)
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		res.Database = "error: " + err.Error()
		return c.JSON(http.StatusOK, res)
	}

	res.Database = "connected"
	res.ConnectionStatus = "connected"

	tables, err := h.db.Migrator().GetTables()
	if err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		res.Tables = tables
	}

	return c.JSON(http.StatusOK, res)
}
