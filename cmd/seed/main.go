package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"shipperd-backend/internal/config"
	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository/postgres"
	"shipperd-backend/internal/service"
)

// Development seeding tool. Creates the two warehouses, an admin account and
// a handful of demo customers so that locker provisioning has data to chew on.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seed := flag.Bool("seed", false, "Create demo warehouses, users and boxes")
	clear := flag.Bool("clear", false, "Delete demo data (keeps the admin account)")
	flag.Parse()

	// Local .env overrides are optional.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	switch {
	case *clear:
		clearData(ctx, store)
	case *seed:
		seedData(ctx, store)
	default:
		log.Fatal("Specify -seed or -clear")
	}
}

func seedData(ctx context.Context, store *postgres.Store) {
	warehouses := []domain.Warehouse{
		{Name: "UAE Warehouse", City: "Dubai", Country: "United Arab Emirates", Address: "Jebel Ali Free Zone"},
		{Name: "Egypt Warehouse", Country: "Egypt", Address: "Cairo Logistics Park"},
	}
	for i := range warehouses {
		if err := store.WarehouseRepository.Create(ctx, &warehouses[i]); err != nil {
			log.Fatalf("Failed to create warehouse %q: %v", warehouses[i].Name, err)
		}
		logger.Info("Created warehouse", "name", warehouses[i].Name, "id", warehouses[i].ID)
	}

	provisioner := service.NewLockerProvisioner(store.WarehouseRepository, store.LockerTxRunner)
	userSvc := service.NewUserService(store.UserRepository, store.LockerRepository, provisioner, noopNotifier{})

	admin := service.CreateUserParams{
		Username:    "admin",
		Email:       "admin@shipperd.dev",
		FirstName:   "Site",
		LastName:    "Admin",
		Password:    "admin12345",
		Role:        domain.RoleAdmin,
		IsStaff:     true,
		IsSuperuser: true,
		Timezone:    "Asia/Dubai",
	}
	if _, _, err := userSvc.CreateUser(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	logger.Info("Created admin account", "username", admin.Username)

	customers := []service.CreateUserParams{
		{Username: "john_doe", Email: "john@example.com", FirstName: "John", LastName: "Doe", Country: "Egypt", City: "Cairo"},
		{Username: "sara_hassan", Email: "sara@example.com", FirstName: "Sara", LastName: "Hassan", Country: "Egypt", City: "Alexandria"},
		{Username: "omar_ali", Email: "omar@example.com", FirstName: "Omar", LastName: "Ali", Country: "United Arab Emirates", City: "Dubai"},
		{Username: "mona_farid", Email: "mona@example.com", FirstName: "Mona", LastName: "Farid", Country: "Egypt", City: "Giza"},
		{Username: "khaled_nabil", Email: "khaled@example.com", FirstName: "Khaled", LastName: "Nabil", Country: "United Arab Emirates", City: "Sharjah"},
	}
	for _, c := range customers {
		c.Password = "customer123"
		c.Role = domain.RoleCustomer
		c.EmailNotifications = false
		user, lockers, err := userSvc.CreateUser(ctx, c)
		if err != nil {
			log.Fatalf("Failed to create customer %q: %v", c.Username, err)
		}
		logger.Info("Created customer", "username", user.Username, "lockers", len(lockers))
	}

	boxes := []domain.InternationalBox{
		{BoxNumber: "BOX-2024-001", OriginCountry: "United Arab Emirates", DestinationCountry: "Egypt", Status: domain.BoxStatusBuilding, WarehouseID: &warehouses[0].ID},
		{BoxNumber: "BOX-2024-002", OriginCountry: "United Arab Emirates", DestinationCountry: "Egypt", Status: domain.BoxStatusInTransit, WarehouseID: &warehouses[0].ID},
		{BoxNumber: "BOX-2024-003", OriginCountry: "Egypt", DestinationCountry: "United Arab Emirates", Status: domain.BoxStatusDelivered, WarehouseID: &warehouses[1].ID},
	}
	for i := range boxes {
		if err := store.BoxRepository.Create(ctx, &boxes[i]); err != nil {
			log.Fatalf("Failed to create box %q: %v", boxes[i].BoxNumber, err)
		}
		logger.Info("Created box", "box_number", boxes[i].BoxNumber, "status", boxes[i].Status)
	}

	logger.Info("Seeding complete")
}

func clearData(ctx context.Context, store *postgres.Store) {
	if err := store.ItemRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear items: %v", err)
	}
	if err := store.BoxRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear boxes: %v", err)
	}
	if err := store.LockerRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear lockers: %v", err)
	}
	if err := store.WarehouseRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear warehouses: %v", err)
	}
	if err := store.UserRepository.DeleteAllExcept(ctx, "admin"); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	logger.Info("Demo data cleared")
}

// noopNotifier keeps seeding offline; no emails leave the machine.
type noopNotifier struct{}

func (noopNotifier) SendLockersReady(context.Context, *domain.User, []domain.Locker) error {
	return nil
}
