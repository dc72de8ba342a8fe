package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Manager provides thread-safe access to environment variables and configuration settings
type Manager struct {
	envVars           map[string]string
	mutex             sync.RWMutex
	ProviderEnvConfig // Embed ProviderEnvConfig
}

// ProviderEnvConfig holds everything the shipping provider clients and the
// service itself need at startup. The EasyPost block is the provider settings
// record: operations must check Enabled && APIKey != "" before touching the
// network.
type ProviderEnvConfig struct {
	EasypostURL     *string
	EasypostAPIKey  *string
	EasypostEnabled *bool
	LabelFormat     *string
	LabelSize       *string
	RequestTimeout  *int
	RedisHost       *string
	RedisPort       *string
	RedisDb         *int
	RedisPrtl       *int
	RedisUser       *string
	RedisPw         *string
	AuthSecret      *string
	SettingsFormURL *string
	Host            *string
	Port            *int
	ServiceName     *string
}

// NewManager creates a new instance of Manager and loads the configuration automatically
func NewManager() (*Manager, error) {
	manager := &Manager{envVars: make(map[string]string)}
	if err := manager.LoadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := manager.LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return manager, nil
}

// LoadConfig populates the embedded ProviderEnvConfig fields from environment variables
func (m *Manager) LoadConfig() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	easypostURL := m.MustGet("EASYPOST_URL")
	easypostAPIKey := m.MustGet("EASYPOST_API_KEY")
	easypostEnabled, _ := strconv.ParseBool(m.MustGet("EASYPOST_ENABLED"))
	labelFormat := m.MustGet("LABEL_FORMAT")
	labelSize := m.MustGet("LABEL_SIZE")
	requestTimeout, _ := strconv.Atoi(m.MustGet("EASYPOST_TIMEOUT_SECONDS"))
	redisHost := m.MustGet("REDIS_HOST")
	redisPort := m.MustGet("REDIS_PORT")
	redisUser := m.MustGet("REDIS_USER")
	redisPw := m.MustGet("REDIS_PW")
	redisDB, _ := strconv.Atoi(m.MustGet("REDIS_DB"))
	redisPrtl, _ := strconv.Atoi(m.MustGet("REDIS_PROTOCOL"))
	authSecret := m.MustGet("AUTH_SECRET")
	settingsFormURL := m.MustGet("SETTINGS_FORM_URL")
	host := m.MustGet("HOST")
	port, _ := strconv.Atoi(m.MustGet("PORT"))
	serviceName := m.MustGet("SERVICE_NAME")
	// Populate the embedded ProviderEnvConfig fields directly
	m.ProviderEnvConfig = ProviderEnvConfig{
		EasypostURL:     &easypostURL,
		EasypostAPIKey:  &easypostAPIKey,
		EasypostEnabled: &easypostEnabled,
		LabelFormat:     &labelFormat,
		LabelSize:       &labelSize,
		RequestTimeout:  &requestTimeout,
		RedisHost:       &redisHost,
		RedisPort:       &redisPort,
		RedisDb:         &redisDB,
		RedisPrtl:       &redisPrtl,
		RedisUser:       &redisUser,
		RedisPw:         &redisPw,
		AuthSecret:      &authSecret,
		SettingsFormURL: &settingsFormURL,
		Host:            &host,
		Port:            &port,
		ServiceName:     &serviceName,
	}

	return nil
}

// LoadEnvFile loads environment variables from a file
func (m *Manager) LoadEnvFile(filePath string) error {
	if err := validateFilePath(filePath); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open .env file: %w", err)
	}
	defer file.Close()

	tempVars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := m.processLine(scanner.Text(), tempVars); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	m.mutex.Lock()
	m.envVars = tempVars
	m.mutex.Unlock()
	return nil
}

// Get retrieves a value from the environment variables
func (m *Manager) Get(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, exists := m.envVars[key]
	return value, exists
}

// MustGet retrieves a value and panics if it doesn't exist
func (m *Manager) MustGet(key string) string {
	value, exists := m.Get(key)
	if !exists {
		panic(fmt.Sprintf("required environment variable %s not found", key))
	}
	return value
}

func (m *Manager) processLine(line string, tempVars map[string]string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format for line: %s", line)
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	if err := validateKeyValue(key, value); err != nil {
		return fmt.Errorf("invalid key-value pair: %w", err)
	}

	tempVars[key] = value
	return nil
}
