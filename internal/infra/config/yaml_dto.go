package config

type yamlConfig struct {
	Numutil struct {
		Table struct {
			Workers *int `yaml:"workers"`
		} `yaml:"table"`

		Store struct {
			Dir   string `yaml:"dir"`
			Index *bool  `yaml:"index"`
		} `yaml:"store"`

		Logging struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"numutil"`
}
