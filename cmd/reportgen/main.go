package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/numberleader/reportgen/internal/api"
	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/llm"
	"github.com/numberleader/reportgen/internal/store"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("reportgen: .env file not loaded", "error", err)
	} else {
		logger.Info("reportgen: environment loaded from .env")
	}

	addr := flag.String("addr", ":5001", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the report database")
	flag.Parse()

	logger.Info("reportgen: startup initiated", "addr", *addr, "db", *dbPath)

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("reportgen: database directory creation failed", "dir", dir, "error", err)
			fmt.Println("store error:", err)
			os.Exit(1)
		}
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("reportgen: store initialization failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer st.Close()

	provider := llm.NewProvider()
	logger.Info("reportgen: llm provider ready", "provider", provider.Name())

	server := api.NewServer(st, provider)

	logger.Info("reportgen: server listening", "addr", *addr, "health", "/api-health")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("reportgen: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/api-health", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("reportgen: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDBPath() string {
	return filepath.Join("data", "reports.db")
}
