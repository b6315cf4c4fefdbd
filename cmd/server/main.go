package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"eduassist/config"
	"eduassist/database"
	"eduassist/router"

	"eduassist/pkg/ai"

	doubtCtrlImp "eduassist/pkg/doubt/controllerImp"
	doubtRepoImp "eduassist/pkg/doubt/repositoryImp"
	doubtSvc "eduassist/pkg/doubt/serviceImp"

	moduleCtrlImp "eduassist/pkg/module/controllerImp"
	moduleRepoImp "eduassist/pkg/module/repositoryImp"

	quizCtrlImp "eduassist/pkg/quiz/controllerImp"
	reportCtrlImp "eduassist/pkg/report/controllerImp"

	healthCtrlImp "eduassist/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))

	// Static frontend (optional at runtime)
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	// 4) LLM (local keyword fallback when no key configured)
	var llm ai.Client
	if cfg.OpenAIAPIKey != "" {
		llm = ai.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Printf("[ai] no API key configured, using local keyword search mode")
		llm = ai.NewLocal()
	}

	// 5) Repos/Services/Controllers
	mRepo := moduleRepoImp.New(db)
	cRepo := doubtRepoImp.New(db)

	askSvc := doubtSvc.New(mRepo, cRepo, llm)

	mCtrl := moduleCtrlImp.New(mRepo, cfg.UploadDir, cfg.IngestDomains)
	dCtrl := doubtCtrlImp.New(askSvc)
	qCtrl := quizCtrlImp.New(mRepo, llm)
	rCtrl := reportCtrlImp.New(mRepo, cRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, mCtrl, dCtrl, qCtrl.Generate, rCtrl.History, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
