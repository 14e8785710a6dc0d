package main

import (
	"fmt"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/config"
	"github.com/hrsuite/hrsuite-console/internal/stub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := stub.NewStore()
	tokens := stub.NewTokenService(cfg.Stub.JWTSecret, cfg.Stub.TokenExpiration)
	router := stub.NewRouter(store, tokens)

	port := fmt.Sprintf(":%d", cfg.Stub.Port)
	fmt.Printf("Stub HR backend running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
