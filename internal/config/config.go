package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// App holds everything the process reads from the environment.
type App struct {
	// MongoDB Atlas credentials
	DBUser string `envconfig:"DB_USER" required:"true"`
	DBPass string `envconfig:"DB_PASS" required:"true"`
	// JWT
	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	// Stripe
	PaymentSecretKey string `envconfig:"PAYMENT_SECRET_KEY" required:"true"`
	// Network
	Port string `envconfig:"PORT" default:"5000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// MongoURI builds the Atlas connection string from the configured
// credentials.
func (c App) MongoURI() string {
	return fmt.Sprintf("mongodb+srv://%s:%s@cluster0.bjkyc58.mongodb.net/?retryWrites=true&w=majority", c.DBUser, c.DBPass)
}
