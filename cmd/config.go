package cmd

// Config carries the environment-provided settings of the dispatch service.
// Policy window overrides are optional; empty values keep the defaults.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	NearReadyWindowMin             string
	RestaurantReadyFallbackMin     string
	RestaurantNearReadyFallbackMin string
	ShopServiceFallbackMin         string
	BatchWindowMin                 string
}
