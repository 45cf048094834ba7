package configs

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// A missing .env file is fine in deployed environments where the
	// variables come from the host.
	_ = godotenv.Load()
}

func EnvMongoURI() string {
	return os.Getenv("MONGOURI")
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvAdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

func EnvAdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}

func EnvStripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

func EnvRazorpayKeyId() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

// EnvFrontendURL is where the storefront lives; checkout sessions redirect
// back to its /verify page.
func EnvFrontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}
