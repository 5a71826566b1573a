package api

import (
	"log"

	"github.com/StudyHive/course_service/config"
	"github.com/StudyHive/course_service/infra/queue"
	"github.com/StudyHive/course_service/internal/api/rest/handlers"
	"github.com/StudyHive/course_service/internal/api/rest/middleware"
	"github.com/StudyHive/course_service/internal/clients/razorpay"
	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/repository"
	"github.com/StudyHive/course_service/internal/services"
	pkgcloudinary "github.com/StudyHive/course_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Fatal("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}

	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260830

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Student{},
		&domain.Tutor{},
		&domain.Admin{},
		&domain.Course{},
		&domain.Enrollment{},
		&domain.LeaveRequest{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	cld, err := pkgcloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	uploader := pkgcloudinary.NewCloudinaryUploader(cld)

	gateway := razorpay.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	auth := helper.SetupAuth(cfg.AccessTokenSecret, cfg.RefreshTokenSecret)

	// ---------- Repositories ----------
	studentRepo := repository.NewStudentRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)

	seedAdmin(adminRepo)

	// ---------- Services ----------
	studentAuth := services.NewAuthService(studentRepo, helper.RoleStudent, auth)
	tutorAuth := services.NewAuthService(tutorRepo, helper.RoleTutor, auth)
	adminAuth := services.NewAuthService(adminRepo, helper.RoleAdmin, auth)
	courseSvc := services.NewCourseService(courseRepo)
	enrollSvc := services.NewEnrollmentService(enrollRepo, courseRepo, studentRepo, gateway, kafkaProducer)
	leaveSvc := services.NewLeaveService(leaveRepo, kafkaProducer)
	adminSvc := services.NewAdminService(studentRepo, tutorRepo, courseRepo)

	// ---------- Routes ----------
	apiGroup := app.Group("/api")

	handlers.NewAuthHandler(studentAuth).SetupRoutes(apiGroup.Group("/student"))
	handlers.NewAuthHandler(tutorAuth).SetupRoutes(apiGroup.Group("/tutor"))
	handlers.NewAuthHandler(adminAuth).SetupRoutes(apiGroup.Group("/admin"))

	adminGroup := apiGroup.Group("/admin",
		middleware.RequireAuth(auth),
		middleware.RequireRole(helper.RoleAdmin),
	)
	handlers.NewAdminHandler(adminSvc).SetupRoutes(adminGroup)

	courseGroup := apiGroup.Group("/courses",
		middleware.RequireAuth(auth),
		middleware.RequireRole(helper.RoleAdmin),
	)
	handlers.NewUploadHandler(uploader).SetupRoutes(courseGroup)
	handlers.NewCourseHandler(courseSvc).SetupRoutes(courseGroup)

	handlers.NewCatalogHandler(courseSvc, enrollSvc, auth).SetupRoutes(apiGroup.Group("/user/courses"))
	handlers.NewLeaveHandler(leaveSvc, auth).SetupRoutes(apiGroup.Group("/leaves"))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Healthy!"})
	})

	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}

// seedAdmin creates the bootstrap admin account on an empty install.
func seedAdmin(repo repository.AdminRepository) {
	count, err := repo.CountAdmins()
	if err != nil || count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin hash error: %v", err)
		return
	}

	if _, err := repo.CreateAdmin(&domain.Admin{
		Name:         "Administrator",
		Email:        "admin@studyhive.io",
		PasswordHash: string(hash),
		IsVerified:   true,
	}); err != nil {
		log.Printf("seed admin error: %v", err)
		return
	}
	log.Println("seeded default admin account")
}
