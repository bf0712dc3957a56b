package configs

// Seed lists businesses inserted on startup when migrations run, as
// SEED_BUSINESSES="pageID:Name;pageID:Name".
type Seed struct {
	Businesses map[string]string `env:"BUSINESSES" envSeparator:";" envKeyValSeparator:":"`
}
