package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Newsvendor NewsvendorDefaults
	Inventory  InventoryDefaults
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// JWTConfig configuración de JWT. Secret vacío = API de simulación pública.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// NewsvendorDefaults valores iniciales de los controles del simulador de producción.
type NewsvendorDefaults struct {
	SampleCount        int
	MinSampleCount     int
	MaxSampleCount     int
	ProductionQuantity float64
	ProductionOptions  []float64
	DemandMean         float64
	DemandStdDev       float64
	FixedCost          float64
	VariableCost       float64
	SalePrice          float64
	SalvagePrice       float64
	Seed               uint64
}

// InventoryDefaults valores iniciales de los controles del simulador de inventario.
type InventoryDefaults struct {
	MeanDailyDemand     float64
	WarehouseCapacity   float64
	OrderCost           float64
	ShortageCostPerUnit float64
	HoldingCostPerUnit  float64
	ReviewPeriodDays    int
	HorizonDays         int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, NEWSVENDOR_SAMPLE_COUNT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	options, err := getFloatList(v, "NEWSVENDOR_PRODUCTION_OPTIONS", []float64{50000, 60000, 70000})
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "simulacion-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "simulacion-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Newsvendor: NewsvendorDefaults{
			SampleCount:        getInt(v, "NEWSVENDOR_SAMPLE_COUNT", 500),
			MinSampleCount:     getInt(v, "NEWSVENDOR_MIN_SAMPLE_COUNT", 100),
			MaxSampleCount:     getInt(v, "NEWSVENDOR_MAX_SAMPLE_COUNT", 2000),
			ProductionQuantity: getFloat(v, "NEWSVENDOR_PRODUCTION_QUANTITY", 60000),
			ProductionOptions:  options,
			DemandMean:         getFloat(v, "NEWSVENDOR_DEMAND_MEAN", 60000),
			DemandStdDev:       getFloat(v, "NEWSVENDOR_DEMAND_STDDEV", 15000),
			FixedCost:          getFloat(v, "NEWSVENDOR_FIXED_COST", 100000),
			VariableCost:       getFloat(v, "NEWSVENDOR_VARIABLE_COST", 34),
			SalePrice:          getFloat(v, "NEWSVENDOR_SALE_PRICE", 42),
			SalvagePrice:       getFloat(v, "NEWSVENDOR_SALVAGE_PRICE", 10),
			Seed:               uint64(getInt(v, "NEWSVENDOR_SEED", 42)),
		},
		Inventory: InventoryDefaults{
			MeanDailyDemand:     getFloat(v, "INVENTORY_MEAN_DAILY_DEMAND", 100),
			WarehouseCapacity:   getFloat(v, "INVENTORY_WAREHOUSE_CAPACITY", 700),
			OrderCost:           getFloat(v, "INVENTORY_ORDER_COST", 1000),
			ShortageCostPerUnit: getFloat(v, "INVENTORY_SHORTAGE_COST", 6),
			HoldingCostPerUnit:  getFloat(v, "INVENTORY_HOLDING_COST", 1),
			ReviewPeriodDays:    getInt(v, "INVENTORY_REVIEW_PERIOD_DAYS", 7),
			HorizonDays:         getInt(v, "INVENTORY_HORIZON_DAYS", 60),
		},
	}

	if cfg.Newsvendor.MinSampleCount > cfg.Newsvendor.MaxSampleCount {
		return nil, fmt.Errorf("config: NEWSVENDOR_MIN_SAMPLE_COUNT (%d) mayor que NEWSVENDOR_MAX_SAMPLE_COUNT (%d)",
			cfg.Newsvendor.MinSampleCount, cfg.Newsvendor.MaxSampleCount)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return def
			}
			return f
		}
		return v.GetFloat64(key)
	}
	return def
}

// getFloatList lee una lista separada por comas ("50000,60000,70000").
func getFloatList(v *viper.Viper, key string, def []float64) ([]float64, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.Split(v.GetString(key), ",")
	out := make([]float64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("config: %s contiene un valor inválido %q: %w", key, s, err)
		}
		out = append(out, f)
	}
	return out, nil
}
