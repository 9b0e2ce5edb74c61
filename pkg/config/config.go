package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Storage  StorageConfig
	Telegram TelegramConfig
	Redis    RedisConfig
	Cron     CronConfig
	Empresa  EmpresaConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria para "hoy" (fechas de ciclos, recordatorios)
	Locale   string // formato de montos, ej. es-PE
}

// Location devuelve la zona horaria configurada; UTC si no se puede cargar.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL   string
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	RunMigrations bool
	MigrationsDir string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig secreto con el que el proveedor de autenticación firma sus tokens (HS256).
type JWTConfig struct {
	Secret string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel y archivo opcional con rotación.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// StorageConfig almacenamiento de PDFs y logos.
type StorageConfig struct {
	Driver      string // supabase | local
	SupabaseURL string
	ServiceKey  string
	Bucket      string
	LocalPath   string
	PublicURL   string
}

// TelegramConfig credenciales del bot de notificaciones. Vacías = notificaciones deshabilitadas.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// RedisConfig cola de trabajos (PDF de boletas). Addr vacío = cola en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CronConfig disparo de recordatorios.
type CronConfig struct {
	Secret            string
	RemindersInterval time.Duration // 0 = solo cron externo
}

// EmpresaConfig datos del emisor impresos en las boletas de venta.
type EmpresaConfig struct {
	Nombre    string
	RUC       string
	Direccion string
	Telefono  string
	Email     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	interval, err := time.ParseDuration(getString(v, "REMINDERS_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("REMINDERS_INTERVAL inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "taller-api"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Lima"),
			Locale:   getString(v, "APP_LOCALE", "es-PE"),
		},
		DB: DBConfig{
			DatabaseURL:   getString(v, "DATABASE_URL", ""),
			Host:          getString(v, "DB_HOST", "localhost"),
			Port:          getInt(v, "DB_PORT", 5432),
			User:          getString(v, "DB_USER", "postgres"),
			Password:      getString(v, "DB_PASSWORD", ""),
			DBName:        getString(v, "DB_NAME", "taller"),
			SSLMode:       getString(v, "DB_SSLMODE", "disable"),
			RunMigrations: getBool(v, "DB_MIGRATIONS", false),
			MigrationsDir: getString(v, "DB_MIGRATIONS_DIR", "./migrations"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "APP_PORT", 8080),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 30),
			Compress:   getBool(v, "LOG_COMPRESS", true),
		},
		Storage: StorageConfig{
			Driver:      getString(v, "STORAGE_DRIVER", "local"),
			SupabaseURL: getString(v, "SUPABASE_URL", ""),
			ServiceKey:  getString(v, "SUPABASE_SERVICE_KEY", ""),
			Bucket:      getString(v, "STORAGE_BUCKET", "boletas"),
			LocalPath:   getString(v, "STORAGE_LOCAL_PATH", "./storage"),
			PublicURL:   getString(v, "STORAGE_PUBLIC_URL", "http://localhost:8080/archivos"),
		},
		Telegram: TelegramConfig{
			BotToken: getString(v, "TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getString(v, "TELEGRAM_CHAT_ID", ""),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Cron: CronConfig{
			Secret:            getString(v, "CRON_SECRET", ""),
			RemindersInterval: interval,
		},
		Empresa: EmpresaConfig{
			Nombre:    getString(v, "EMPRESA_NOMBRE", "GLASARD PERÚ"),
			RUC:       getString(v, "EMPRESA_RUC", "20600000001"),
			Direccion: getString(v, "EMPRESA_DIRECCION", "Av. Principal 123, Lima"),
			Telefono:  getString(v, "EMPRESA_TELEFONO", "(01) 000-0000"),
			Email:     getString(v, "EMPRESA_EMAIL", "ventas@glasard.pe"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
