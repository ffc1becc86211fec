package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config agrega todas as configurações da aplicação.
type Config struct {
	AppPort        string
	JWTSecret      string
	SessionMinutes int
	SessionCookie  string
	DBDriver       string
	DBPath         string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	AuthBackend    string
	LDAPURL        string
	LDAPBaseDN     string
	LDAPBindDN     string
	LDAPBindPass   string
}

// LoadEnv tenta carregar variáveis de ambiente de um arquivo .env (modo dev).
func LoadEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// New cria uma nova instância de Config baseada em variáveis de ambiente.
func New() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		JWTSecret:      getEnv("APP_JWT_SECRET", "change-me-secret"),
		SessionMinutes: getEnvInt("APP_SESSION_MINUTES", 480),
		SessionCookie:  getEnv("APP_SESSION_COOKIE", "manutencao_session"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBPath:         getEnv("DB_PATH", "manutencao.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "manutencao"),
		DBPassword:     getEnv("DB_PASSWORD", "manutencao"),
		DBName:         getEnv("DB_NAME", "manutencao"),
		AuthBackend:    getEnv("AUTH_BACKEND", "local"),
		LDAPURL:        getEnv("LDAP_URL", "ldap://ldap.example.com:389"),
		LDAPBaseDN:     getEnv("LDAP_BASE_DN", "dc=example,dc=com"),
		LDAPBindDN:     getEnv("LDAP_BIND_DN", "cn=admin,dc=example,dc=com"),
		LDAPBindPass:   getEnv("LDAP_BIND_PASSWORD", "admin"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var val int
		_, err := fmt.Sscanf(v, "%d", &val)
		if err == nil {
			return val
		}
	}
	return def
}
