package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type checkout struct {
	StoreName       string `mapstructure:"store_name"`
	WhatsAppNumber  string `mapstructure:"whatsapp_number"`
	WhatsAppDisplay string `mapstructure:"whatsapp_display"`
	OrderLogURL     string `mapstructure:"order_log_url"`
	OrderIDPrefix   string `mapstructure:"order_id_prefix"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Checkout       checkout   `mapstructure:"checkout"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	viper.SetDefault("checkout.store_name", "Shopdiginow")
	viper.SetDefault("checkout.order_id_prefix", "SDN")

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Checkout:
	StoreName=%q
	WhatsAppNumber=%q
	WhatsAppDisplay=%q
	OrderLogURL=%q
	OrderIDPrefix=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Checkout.StoreName,
		c.Checkout.WhatsAppNumber,
		c.Checkout.WhatsAppDisplay,
		c.Checkout.OrderLogURL,
		c.Checkout.OrderIDPrefix,
	)
}
