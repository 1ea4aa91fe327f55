package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/activity-board/internal/app"
	"github.com/aidar/activity-board/internal/config"
)

func main() {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Не удалось создать приложение: %v", err)
	}

	// Настраиваем клиент Activities API и роутинг
	ctx := context.Background()
	if err := application.Initialize(ctx); err != nil {
		log.Fatalf("Не удалось инициализировать приложение: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Ошибка сервера: %v", err)
		}
	}()

	fmt.Printf("Доска занятий запущена на порту %s (API: %s)\n", cfg.Server.Port, cfg.API.BaseURL)
	fmt.Println("Нажмите Ctrl+C для остановки")

	<-sigChan
	fmt.Println("\nОстановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	if err := application.Shutdown(shutdownCtx); err != nil {
		cancel()
		log.Printf("Не удалось корректно остановить сервер: %v", err)
		os.Exit(1)
	}
	cancel()

	fmt.Println("Сервер остановлен")
}
