package config

// Defaults reported by the API. The disclaimer text is part of the /ask
// response contract.
const (
	DefaultEngineName    = "Enhanced Medical QA Engine"
	DefaultEngineVersion = "2.0.0"
	DefaultDisclaimer    = "This system provides information for educational purposes only. Always consult with qualified healthcare professionals for medical decisions."
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Engine.Name == "" {
		cfg.Engine.Name = DefaultEngineName
	}
	if cfg.Engine.Version == "" {
		cfg.Engine.Version = DefaultEngineVersion
	}
	if cfg.Engine.Disclaimer == "" {
		cfg.Engine.Disclaimer = DefaultDisclaimer
	}
	if cfg.Docs.SamplePath == "" {
		cfg.Docs.SamplePath = "sample_medical_documents.txt"
	}
	if cfg.CORS.AllowedOrigins == nil {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}
