package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"wanderbook/pkg/generator"
	"wanderbook/pkg/images"
	"wanderbook/pkg/inference"
	"wanderbook/pkg/queue/gemini"
	"wanderbook/pkg/schema"
	"wanderbook/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	geminiKey := os.Getenv("GEMINI_API_KEY")

	var inf inference.Inferencer
	if openaiKey := os.Getenv("OPENAI_API_KEY"); openaiKey != "" && geminiKey == "" {
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		inf = inference.NewOpenAIInferencer(openaiKey, model)
	} else {
		g, err := inference.NewGeminiInferencer(ctx, geminiKey, os.Getenv("GEMINI_MODEL"), schema.DestinationContentGenAISchema())
		if err != nil {
			log.Fatal(err)
		}
		g.EnableSearch()
		inf = g
	}

	imgClient, err := images.NewClient(ctx, images.Config{
		APIKey: geminiKey,
		Model:  os.Getenv("GEMINI_IMAGE_MODEL"),
	})
	if err != nil {
		log.Fatal(err)
	}

	q := gemini.New(ctx, imgClient)
	q.Start()
	defer q.Stop()

	srv := server.NewServer(ctx, generator.New(inf), q)
	srv.Echo.Logger.SetLevel(log.INFO)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	log.Infof("WanderBook listening at %s", addr)
	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}
