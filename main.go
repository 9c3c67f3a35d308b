package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/spncrkm/e-commerce-project/config"
	"github.com/spncrkm/e-commerce-project/controllers"
	"github.com/spncrkm/e-commerce-project/models"
	"github.com/spncrkm/e-commerce-project/repository"
	"github.com/spncrkm/e-commerce-project/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")
	err = db.AutoMigrate(
		&models.Customer{},
		&models.CustomerAccount{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	log.Println("Database migration complete.")

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	kafkaSvc, err := services.NewKafkaService(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("Failed to initialize Kafka service: %v", err)
	}

	customerSvc := services.NewCustomerService(customerRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, kafkaSvc, cfg.Kafka.Topic)
	accountSvc := services.NewAccountService(accountRepo)

	customerCtrl := controllers.NewCustomerController(customerSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	accountCtrl := controllers.NewAccountController(accountSvc)

	app := fiber.New()

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("I AM ALIIIIIVE")
	})

	// Account routes are registered before the parameterized customer routes
	// so /customers/account/:id is not captured by /customers/:id.
	app.Post("/customers/account/", accountCtrl.CreateAccount)
	app.Get("/customers/account/:id", accountCtrl.GetAccount)
	app.Put("/customers/account/:id", accountCtrl.UpdateAccount)
	app.Delete("/customers/account/:id", accountCtrl.DeleteAccount)

	app.Get("/customers", customerCtrl.ListCustomers)
	app.Post("/customers", customerCtrl.CreateCustomer)
	app.Put("/customers/:id", customerCtrl.UpdateCustomer)
	app.Delete("/customers/:id", customerCtrl.DeleteCustomer)

	app.Get("/products", productCtrl.ListProducts)
	app.Get("/products/by-name", productCtrl.SearchProductsByName)
	app.Post("/products", productCtrl.CreateProduct)
	app.Put("/products/:id", productCtrl.UpdateProduct)
	app.Delete("/products/:id", productCtrl.DeleteProduct)

	app.Get("/orders", orderCtrl.ListOrders)
	app.Post("/orders", orderCtrl.CreateOrder)
	app.Put("/orders/:id", orderCtrl.UpdateOrder)
	app.Delete("/orders/:id", orderCtrl.DeleteOrder)
	app.Post("/orders/:id/products", orderCtrl.AttachProduct)
	app.Delete("/orders/:id/products/:productID", orderCtrl.DetachProduct)

	log.Printf("Server is starting on %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}
