// Command accountctl creates accounts from a terminal:
//
//	accountctl create -email a@x.com [-d dsn] [-c config.json]
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jwtauth/internal/accountctl"
	"github.com/dmitrijs2005/jwtauth/internal/server/config"
	"github.com/dmitrijs2005/jwtauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jwtauth/internal/server/services"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN, repomanager.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("%v", err)
	}

	svc, err := services.NewAccountService(db, rm, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := accountctl.Run(ctx, os.Args[1:], svc, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}

}
