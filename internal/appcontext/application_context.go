package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/sembarang8788-lab/cafe-backend/internal/config"
	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
	"github.com/sembarang8788-lab/cafe-backend/internal/service"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf             *config.Config
	DbConn         *gorm.DB
	Store          db.UnifiedDB
	ProductService service.IProductService
	OrderService   service.IOrderService
	UserService    service.IUserService
	Logger         *zerolog.Logger
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	v := reflect.ValueOf(*cf)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fieldName := t.Field(i).Name
		fieldValue := v.Field(i).Interface()
		fmt.Printf("  \"%s\": \"%v\",\n", fieldName, fieldValue)
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpLogger()
	if err != nil {
		return err
	}

	err = app.setUpdbConn()
	if err != nil {
		return err
	}

	err = app.setUpStore()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	err = app.setUpProductService()
	if err != nil {
		return err
	}

	err = app.setUpOrderService()
	if err != nil {
		return err
	}

	err = app.setUpUserService()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpLogger() error {
	log.Printf("Start setup logger")
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	app.Logger = &logger
	log.Printf("Finish setup logger")
	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup database store")
	app.Store = db.NewUnifiedDB(app.DbConn)
	log.Printf("Finish setup database store")
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	log.Printf("Start setup product service")
	app.ProductService = service.NewProductService(app.Store)
	log.Printf("Finish setup product service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.Store)
	log.Printf("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	log.Printf("Start setup user service")
	app.UserService = service.NewUserService(app.Store)
	log.Printf("Finish setup user service")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			sqlDB, err := app.DbConn.DB()
			if err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}

func runDBMigration(migrationURL string, dbSource string) error {
	migrateion, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	return migrateion.Up()
}

func trimLeadingSlash(path string) string {
	if len(path) > 0 && path[0] == '/' {
		return path[1:]
	}
	return path
}

// db migration
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	migrateUrl := trimLeadingSlash(app.Cf.MigrateDir)
	err := runDBMigration(
		fmt.Sprintf("file://%s", migrateUrl),
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)

	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}
