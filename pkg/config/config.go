package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Shop    ShopConfig
	Catalog []CatalogItem
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// ShopConfig presentación de la caja.
type ShopConfig struct {
	Currency  string // prefijo de los precios en pantalla, ej. "$" o "EUR"
	Locale    string // etiqueta BCP 47 para separadores decimales, ej. "es-CO"
	NameWidth int    // columnas reservadas al nombre en el menú
}

// CatalogItem entrada cruda del catálogo tal como viene del archivo.
// El precio se lee como texto para no perder exactitud decimal.
type CatalogItem struct {
	Name  string `mapstructure:"name"`
	Price string `mapstructure:"price"`
}

var defaultCatalog = []map[string]any{
	{"name": "Manzana", "price": "0.50"},
	{"name": "Pera", "price": "1.25"},
	{"name": "Banano", "price": "0.30"},
	{"name": "Naranja", "price": "0.80"},
	{"name": "Fresa (kg)", "price": "4.50"},
	{"name": "Uva (kg)", "price": "3.20"},
}

// Load lee la configuración desde variables de entorno y, si existe, desde config.yaml.
// Busca en las rutas dadas o, por defecto, en "." y "./config". Las env vars tienen prioridad:
// APP_ENV, APP_NAME, APP_LOGLEVEL, SHOP_CURRENCY, SHOP_LOCALE, SHOP_NAMEWIDTH.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("leer archivo de configuración: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("app.env"),
			Name:     v.GetString("app.name"),
			LogLevel: v.GetString("app.loglevel"),
		},
		Shop: ShopConfig{
			Currency:  v.GetString("shop.currency"),
			Locale:    v.GetString("shop.locale"),
			NameWidth: v.GetInt("shop.namewidth"),
		},
	}
	if err := v.UnmarshalKey("catalog", &cfg.Catalog); err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}
	if cfg.Shop.NameWidth <= 0 || cfg.Shop.NameWidth > entity.NameDisplayWidth {
		cfg.Shop.NameWidth = entity.NameDisplayWidth
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "fruteria-pos")
	v.SetDefault("app.loglevel", "info")
	v.SetDefault("shop.currency", "$")
	v.SetDefault("shop.locale", "es")
	v.SetDefault("shop.namewidth", 20)
	v.SetDefault("catalog", defaultCatalog)
}

// Items valida el catálogo y lo convierte en artículos de dominio, en el mismo orden.
func (c *Config) Items() ([]entity.Item, error) {
	items := make([]entity.Item, 0, len(c.Catalog))
	for i, ci := range c.Catalog {
		price, err := decimal.NewFromString(strings.TrimSpace(ci.Price))
		if err != nil {
			return nil, fmt.Errorf("catálogo[%d] %q: precio %q: %w", i, ci.Name, ci.Price, err)
		}
		item, err := entity.NewItem(ci.Name, price)
		if err != nil {
			return nil, fmt.Errorf("catálogo[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
