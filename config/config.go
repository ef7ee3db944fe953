package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/tradecheck/internal/domain"
)

// Config es la configuración completa del checklist.
type Config struct {
	User      string          `yaml:"user"` // id del usuario de la sesión
	Checklist ChecklistConfig `yaml:"checklist"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// ChecklistConfig define los tiles del checklist. Vacío usa el set por
// defecto de cinco tiles multi-timeframe.
type ChecklistConfig struct {
	Tiles []TileConfig `yaml:"tiles"`
}

// TileConfig es la definición de un tile en YAML. Un tile sin items recibe
// el set por defecto de su variante (ver domain.NewTile).
type TileConfig struct {
	Name  string       `yaml:"name"`
	Items []ItemConfig `yaml:"items"`
}

// ItemConfig es un criterio con su peso en texto ("+10%"). Un peso no
// parseable contribuye 0 — configuración malformada degrada, no rompe.
type ItemConfig struct {
	Label  string `yaml:"label"`
	Weight string `yaml:"weight"`
}

// StorageConfig controla dónde se persisten los trades.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Un archivo de config inexistente no es un error: se usan los
// defaults. Las variables de entorno sobreescriben lo que corresponda.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	case os.IsNotExist(err):
		// sin archivo: defaults + env
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Tiles materializa las definiciones de config como tiles de dominio, con
// el tipo de cada tile resuelto en la construcción.
func (c *Config) Tiles() []domain.Tile {
	tiles := make([]domain.Tile, 0, len(c.Checklist.Tiles))
	for _, tc := range c.Checklist.Tiles {
		items := make([]domain.ChecklistItem, 0, len(tc.Items))
		for _, ic := range tc.Items {
			items = append(items, domain.ChecklistItem{Label: ic.Label, Weight: ic.Weight})
		}
		tiles = append(tiles, domain.NewTile(tc.Name, items))
	}
	return tiles
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están
// presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRADECHECK_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("TRADECHECK_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if len(cfg.Checklist.Tiles) == 0 {
		cfg.Checklist.Tiles = defaultTiles()
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "tradecheck.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// defaultTiles es el checklist multi-timeframe por defecto: contexto diario,
// confirmación en 4H, preparación de ejecución en 1H, señal de entrada y el
// tile de risk-flags.
func defaultTiles() []TileConfig {
	return []TileConfig{
		{
			Name: "1D (Daily Context - Macro Bias)",
			Items: []ItemConfig{
				{Label: "Trend", Weight: "+10%"},
				{Label: "EMA Alignment", Weight: "+10%"},
				{Label: "Supply/Demand zone", Weight: "+10%"},
			},
		},
		{
			Name: "4H (Intermediate Context - Confirmation)",
			Items: []ItemConfig{
				{Label: "Trend", Weight: "+10%"},
				{Label: "Supply/Demand zone", Weight: "+10%"},
				{Label: "BOS (Break Of Structure)", Weight: "+10%"},
			},
		},
		{
			Name: "1H (Execution Prep - ICC Core)",
			Items: []ItemConfig{
				{Label: "Trend", Weight: "+5%"},
				{Label: "EMA Alignment", Weight: "+5%"},
				{Label: "Round Psychological level", Weight: "+5%"},
				{Label: "Correction/Retest", Weight: "+10%"},
				{Label: "Order Block Filled", Weight: "10%"},
			},
		},
		{
			Name: "ENTRY SIGNAL",
			Items: []ItemConfig{
				{Label: "SOS (Shift Of Structure)", Weight: "+5%"},
				{Label: "EMA filter (15m,30m,1H)", Weight: "+5%"},
			},
		},
		{
			Name: "Stop Loss & Take Profit",
			Items: []ItemConfig{
				{Label: "Stop Loss"},
				{Label: "Take Profit"},
			},
		},
	}
}
