package routers

import (
	"net/http"
	"time"

	"shippinghub/external"
	"shippinghub/internal/database"
	"shippinghub/internal/handlers"
	httpclient "shippinghub/internal/http"
	"shippinghub/internal/invoice"
	"shippinghub/internal/middleware"
	"shippinghub/internal/notify"
	env "shippinghub/internal/secret"
)

func ShippingRouter() http.Handler {
	envManager, err := env.NewManager()
	if err != nil {
		panic(err)
	}
	redisSettings := database.RedisSettings{
		DB:         envManager.RedisDb,
		DBUser:     envManager.RedisUser,
		DBPassword: envManager.RedisPw,
		Host:       envManager.RedisHost,
		Port:       envManager.RedisPort,
		Protocol:   envManager.RedisPrtl,
	}
	redis, err := database.NewRedisConnection(redisSettings)
	if err != nil {
		panic(err)
	}
	httpClient := httpclient.CreateHttpClientInstance(redis,
		httpclient.WithCtxTimeout(time.Duration(*envManager.RequestTimeout)*time.Second),
		httpclient.WithMaxIdleConns(200), httpclient.WithMaxConnsPerHost(200), httpclient.WithMaxIdleConnsPerHost(200),
		httpclient.WithIdleConnTimeout(90*time.Second), httpclient.WithDisableKeepAlives(false))
	sink := notify.NewLogSink()
	shippingFactory, err := external.NewShippingServiceFactory(envManager, httpClient, redis, sink)
	if err != nil {
		panic(err)
	}
	applier := invoice.NewApplier(*envManager.SettingsFormURL)

	auth := middleware.BearerAuth(*envManager.AuthSecret)
	settings := middleware.GetShippingSettings(*envManager.ServiceName)

	baseStack := middleware.CreateStack(middleware.Recovery, middleware.CheckCORS,
		middleware.AddCorrelationID, middleware.AddHeaders, auth, middleware.Logging)
	rateStack := middleware.CreateStack(baseStack, middleware.RateRequestValidation)
	buyStack := middleware.CreateStack(baseStack, middleware.BuyRequestValidation)
	verifyStack := middleware.CreateStack(baseStack, middleware.VerifyRequestValidation)
	invoiceStack := middleware.CreateStack(baseStack, settings)
	healthStack := middleware.CreateStack(middleware.Recovery, middleware.AddCorrelationID, middleware.AddHeaders, middleware.Logging)

	router := http.NewServeMux()
	router.Handle("POST /rates", rateStack(handlers.RateShoppingHandler(shippingFactory)))
	router.Handle("POST /shipments/{shipmentID}/buy", buyStack(handlers.BuyShipmentHandler(shippingFactory)))
	router.Handle("GET /shipments/{shipmentID}/label", baseStack(handlers.LabelHandler(shippingFactory, redis)))
	router.Handle("GET /shipments/{shipmentID}/tracking", baseStack(handlers.TrackingHandler(shippingFactory)))
	router.Handle("POST /addresses/verify", verifyStack(handlers.VerifyAddressHandler(shippingFactory)))
	router.Handle("POST /invoices/shipping-cost", invoiceStack(handlers.ApplyShippingCostHandler(applier)))
	router.Handle("GET /settings/check", invoiceStack(handlers.SettingsCheckHandler(applier)))
	router.Handle("GET /health", healthStack(handlers.HealthCheckHandler()))
	return router
}
