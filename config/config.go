package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type listing struct {
	PageSize int `mapstructure:"page_size"`
}

type notifications struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type catalog struct {
	Latency       time.Duration `mapstructure:"latency"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	FetchAttempts int           `mapstructure:"fetch_attempts"`
}

type checkout struct {
	TaxRate          float64            `mapstructure:"tax_rate"`
	FreeShippingOver float64            `mapstructure:"free_shipping_over"`
	ShippingFee      float64            `mapstructure:"shipping_fee"`
	PromoCodes       map[string]float64 `mapstructure:"promo_codes"`
}

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	BlobStorePath  string        `mapstructure:"blob_store_path"`
	Listing        listing       `mapstructure:"listing"`
	Notifications  notifications `mapstructure:"notifications"`
	Catalog        catalog       `mapstructure:"catalog"`
	Checkout       checkout      `mapstructure:"checkout"`
}

func Load() Config {
	setDefaults()
	viper.SetConfigFile(getConfigFilepath())

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

func setDefaults() {
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("blob_store_path", "./storefront.db")
	viper.SetDefault("listing.page_size", 12)
	viper.SetDefault("notifications.ttl", 5*time.Second)
	viper.SetDefault("catalog.latency", time.Second)
	viper.SetDefault("catalog.fetch_timeout", 10*time.Second)
	viper.SetDefault("catalog.fetch_attempts", 3)
	viper.SetDefault("checkout.tax_rate", 0.10)
	viper.SetDefault("checkout.free_shipping_over", 50.0)
	viper.SetDefault("checkout.shipping_fee", 9.99)
	viper.SetDefault("checkout.promo_codes", map[string]float64{})
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "./config.yaml", "config file")
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
	BlobStorePath=%q

	Listing:
	PageSize=%d

	Notifications:
	TTL=%s

	Catalog:
	Latency=%s
	FetchTimeout=%s
	FetchAttempts=%d

	Checkout:
	TaxRate=%.2f
	FreeShippingOver=%.2f
	ShippingFee=%.2f
	PromoCodes=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.BlobStorePath,
		c.Listing.PageSize,
		c.Notifications.TTL,
		c.Catalog.Latency,
		c.Catalog.FetchTimeout,
		c.Catalog.FetchAttempts,
		c.Checkout.TaxRate,
		c.Checkout.FreeShippingOver,
		c.Checkout.ShippingFee,
		c.Checkout.PromoCodes,
	)
}
