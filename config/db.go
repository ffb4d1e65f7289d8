package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hostel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default tenant and its admin exist so a fresh
// install is immediately usable.
func SeedDatabase() {
	var tenant models.Tenant
	err := DB.Where("code = ?", "HOSTEL01").First(&tenant).Error
	if err != nil {
		tenant = models.Tenant{
			Name:   "Default Hostel",
			Code:   "HOSTEL01",
			Status: "ACTIVE",
		}
		if cErr := DB.Create(&tenant).Error; cErr != nil {
			log.Printf("warning: failed to seed default tenant: %v", cErr)
			return
		}
		log.Println("Default tenant seeded")
	}

	var adminCount int64
	DB.Model(&models.Admin{}).Where("tenant_id = ?", tenant.ID).Count(&adminCount)
	if adminCount == 0 {
		password := utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")
		hash, hErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hErr != nil {
			log.Printf("warning: failed to hash default admin password: %v", hErr)
			return
		}
		admin := models.Admin{
			TenantID: tenant.ID,
			FullName: "Hostel Admin",
			Email:    utils.EnvOrDefault("ADMIN_EMAIL", "admin@hostel.local"),
			Password: string(hash),
			Role:     "ADMIN",
		}
		if cErr := DB.Create(&admin).Error; cErr != nil {
			log.Printf("warning: failed to create default admin: %v", cErr)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Tenant{},
		&models.Admin{},
		&models.Student{},
		&models.Building{},
		&models.Floor{},
		&models.Room{},
		&models.RoomAllocation{},
		&models.Complaint{},
		&models.MaintenanceRequest{},
		&models.VisitorLog{},
		&models.Announcement{},
		&models.Event{},
		&models.Fee{},
		&models.Payment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
