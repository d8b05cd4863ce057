package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/studyplanapi/internal/database"
	"github.com/muhammadolammi/studyplanapi/internal/planstore"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}

	googleApiKey := os.Getenv("GOOGLE_API_KEY")
	if googleApiKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in env")
	}

	// create the plan and chat agents with their runners
	planAgentName := "study plan generator"
	planAgent, err := GetAgent(googleApiKey, planAgentName, "Generate Study Curricula", planPrompt())
	if err != nil {
		log.Fatalf("failed to create plan agent: %v", err)
	}
	chatAgentName := "study coach"
	chatAgent, err := GetAgent(googleApiKey, chatAgentName, "Coach Study Plans", chatPrompt())
	if err != nil {
		log.Fatalf("failed to create chat agent: %v", err)
	}

	//  create session service for ai use
	inMemoryService := session.InMemoryService()

	planRunner, err := runner.New(runner.Config{
		AppName:        planAgent.Name(),
		Agent:          planAgent,
		SessionService: inMemoryService,
	})
	if err != nil {
		log.Fatalf("failed to create plan runner: %v", err)
	}
	chatRunner, err := runner.New(runner.Config{
		AppName:        chatAgent.Name(),
		Agent:          chatAgent,
		SessionService: inMemoryService,
	})
	if err != nil {
		log.Fatalf("failed to create chat runner: %v", err)
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	// compose the plan store: postgres primary, r2 failover
	primary := planstore.NewPostgres(dbqueries)
	secondary := planstore.NewR2(awsConfig, r2Config.AccountID, r2Config.Bucket)
	plans := planstore.NewFallback(primary, secondary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiConfig := ApiConfig{
		DB:                  dbqueries,
		Plans:               plans,
		RabbitConn:          conn,
		PlanRunner:          planRunner,
		ChatRunner:          chatRunner,
		AgentSessionService: inMemoryService,
		PlanAgentName:       planAgentName,
		ChatAgentName:       chatAgentName,
		Port:                port,
	}

	fmt.Println("Starting study plan api on port " + apiConfig.Port)
	log.Fatal(http.ListenAndServe(":"+apiConfig.Port, apiConfig.Routes()))
}
