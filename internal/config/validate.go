package config

// ValidateForRun checks everything the server needs before start.
func ValidateForRun(cfg *Config) error {
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}
