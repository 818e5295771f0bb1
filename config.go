package bankcore

type Config struct {
	Listen   string `yaml:"listen"`
	Database struct {
		ConnectionString string `yaml:"conn_str"`
	} `yaml:"database"`
	Snowflake struct {
		Node int64 `yaml:"node"`
	} `yaml:"snowflake"`
	BcryptCost int `yaml:"bcrypt_cost"`
	Limits     struct {
		Users        int64 `yaml:"users"`
		Accounts     int64 `yaml:"accounts"`
		Transactions int64 `yaml:"transactions"`
	} `yaml:"limits"`
}
