package router

import (
	"database/sql"
	"net/http"
	"strings"

	mem "vetcare-portal/internal/adapters/storage/memory"
	pg "vetcare-portal/internal/adapters/storage/postgres"
	"vetcare-portal/internal/domain/appointments"
	"vetcare-portal/internal/domain/cart"
	"vetcare-portal/internal/domain/pets"
	"vetcare-portal/internal/domain/products"
	"vetcare-portal/internal/middleware"
	"vetcare-portal/internal/platform/logger"
	"vetcare-portal/internal/platform/metrics"
	"vetcare-portal/internal/ports/auth"
	"vetcare-portal/internal/ports/media"

	_ "vetcare-portal/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Catálogo en Postgres vía gorm. nil => catálogo semilla in-memory (Catalog).
	Gorm *gorm.DB

	Logger   logger.Logger  // nil => Nop
	Uploader media.Uploader // nil => las fotos fallan con 502

	// Slot local del carrito. nil => in-memory.
	CartStore cart.Store

	// Agenda de la clínica. Zero value => DefaultSchedule().
	Schedule appointments.Schedule

	// Catálogo semilla para el repo in-memory de productos.
	Catalog []products.Product

	// Si UploadsDir no está vacío se sirven los archivos bajo UploadsPath.
	UploadsDir  string
	UploadsPath string

	Metrics bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if dir := strings.TrimSpace(opts.UploadsDir); dir != "" {
		prefix := "/" + strings.Trim(opts.UploadsPath, "/")
		if prefix == "/" {
			prefix = "/uploads"
		}
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(dir))))
	}

	var (
		petRepo         pets.Repository
		appointmentRepo appointments.Repository
		productRepo     products.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		appointmentRepo = pg.NewAppointmentsRepo(opts.DB)
	} else {
		memPets := mem.NewPetRepo()
		petRepo = memPets
		appointmentRepo = mem.NewAppointmentRepo(memPets)
	}

	if opts.Gorm != nil {
		productRepo = pg.NewProductsRepo(opts.Gorm)
	} else {
		productRepo = mem.NewProductRepo(opts.Catalog)
	}

	cartStore := opts.CartStore
	if cartStore == nil {
		cartStore = mem.NewCartStore()
	}

	schedule := opts.Schedule
	if schedule.Slots.Step == 0 {
		schedule = appointments.DefaultSchedule()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo, opts.Uploader)
	appointmentsSvc := appointments.NewService(appointmentRepo, petsSvc, schedule)
	productsSvc := products.NewService(productRepo)
	cartSvc := cart.NewService(cartStore, productsSvc)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, log)
	appointments.RegisterRoutes(r, appointmentsSvc, log)
	products.RegisterRoutes(r, productsSvc, log)
	cart.RegisterRoutes(r, cartSvc, log)

	return r
}
