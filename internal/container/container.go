package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/hallbook/internal/config"
	"github.com/joshua-takyi/hallbook/internal/helpers"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
	"github.com/joshua-takyi/hallbook/internal/store"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Optional clients, nil when the matching driver or provider is off
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	Repo           models.SlotRepo
	Store          *store.Store
	Tokens         *helpers.TokenManager
	VenueService   *services.VenuesService
	PaymentService *services.PaymentService
	BookingService *services.BookingService
	AdminService   *services.AdminService
	AuthService    *services.AuthService
}

// Clients groups the external connections made in main.
type Clients struct {
	Cloudinary *cloudinary.Cloudinary
	Supabase   *supabase.Client
	MongoDB    *mongo.Client
}

// NewContainer picks the slot repository, rehydrates the booking store and
// wires the services on top of it.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, clients Clients) (*Container, error) {
	repo, err := newSlotRepo(cfg, clients.MongoDB)
	if err != nil {
		return nil, err
	}

	bookingStore := store.New(repo, store.WithLogger(logger.With("component", "store")))
	bookingStore.Load(ctx)

	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if cfg.JWKSURL != "" {
		if err := tokens.UseJWKS(ctx, cfg.JWKSURL); err != nil {
			return nil, err
		}
	}

	authenticator, err := newAuthenticator(cfg, clients.Supabase)
	if err != nil {
		return nil, err
	}

	venueService := services.NewVenuesService(bookingStore, clients.Cloudinary)
	paymentService := services.NewPaymentService(cfg.CardPaymentDelay, cfg.UPIPaymentDelay, logger.With("component", "payments"))

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Cloudinary:     clients.Cloudinary,
		SupabaseClient: clients.Supabase,
		MongoDBClient:  clients.MongoDB,
		Repo:           repo,
		Store:          bookingStore,
		Tokens:         tokens,
		VenueService:   venueService,
		PaymentService: paymentService,
		BookingService: services.NewBookingService(bookingStore, paymentService, logger.With("component", "bookings")),
		AdminService:   services.NewAdminService(bookingStore, venueService, logger.With("component", "admin")),
		AuthService:    services.NewAuthService(authenticator, repo, tokens, logger.With("component", "auth")),
	}, nil
}

func newSlotRepo(cfg *config.Config, mongoClient *mongo.Client) (models.SlotRepo, error) {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		if mongoClient == nil {
			return nil, fmt.Errorf("mongo storage driver selected but no MongoDB client")
		}
		return models.MongodbNewRepo(mongoClient, cfg.MongoDBDatabase), nil
	case config.StorageMemory:
		return models.MemoryNewRepo(), nil
	default:
		repo, err := models.FileNewRepo(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

func newAuthenticator(cfg *config.Config, supabaseClient *supabase.Client) (services.Authenticator, error) {
	if cfg.AuthProvider == config.AuthSupabase {
		if supabaseClient == nil {
			return nil, fmt.Errorf("supabase auth provider selected but no Supabase client")
		}
		return services.NewSupabaseAuthenticator(models.SupabaseNewRepo(supabaseClient)), nil
	}
	return services.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword), nil
}

func (c *Container) Close() {
	c.Tokens.Close()
}
