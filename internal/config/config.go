package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contém as configurações do terminal de ponto de venda
type Config struct {
	ServerPort        string
	BackendBaseURL    string
	BackendToken      string
	BackendTimeout    time.Duration
	AllowedOrigins    []string
	ReceiptSpoolDir   string
	CashierName       string
	NotificationLimit int
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	timeout, _ := strconv.Atoi(getEnv("BACKEND_TIMEOUT", "15"))
	notifLimit, _ := strconv.Atoi(getEnv("NOTIFICATION_LIMIT", "50"))

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3039"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		BackendBaseURL:    getEnv("BACKEND_BASE_URL", "https://razaworld.uk"),
		BackendToken:      getEnv("BACKEND_TOKEN", ""),
		BackendTimeout:    time.Duration(timeout) * time.Second,
		AllowedOrigins:    origins,
		ReceiptSpoolDir:   getEnv("RECEIPT_SPOOL_DIR", "./spool"),
		CashierName:       getEnv("CASHIER_NAME", "Unknown"),
		NotificationLimit: notifLimit,
	}
}

// getEnv retorna o valor da variável de ambiente ou o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
