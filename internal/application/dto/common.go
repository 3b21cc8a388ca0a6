package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SampleCountRange rango permitido para el número de simulaciones.
type SampleCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultsResponse valores iniciales de los controles de ambos simuladores.
type DefaultsResponse struct {
	Newsvendor        NewsvendorConfigDTO `json:"newsvendor"`
	NewsvendorSeed    uint64              `json:"newsvendor_seed"`
	ProductionOptions []float64           `json:"production_options"`
	SampleCountRange  SampleCountRange    `json:"sample_count_range"`
	Inventory         InventoryConfigDTO  `json:"inventory"`
	ExportFormats     []string            `json:"export_formats"`
}
