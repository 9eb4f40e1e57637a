// cmd/seed/main.go
// Populates a development database with demo users, posts and votes
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"Postboard/internal/config"
	"Postboard/internal/core/posts"
	"Postboard/internal/core/users"
	"Postboard/internal/core/votes"
	postgresRepo "Postboard/internal/db/postgres"
)

const demoPassword = "postboard-demo"

var demoUsers = []users.CreateUserRequest{
	{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
	{Email: "alan@example.com", FirstName: "Alan", LastName: "Turing"},
}

var demoTitles = []string{
	"Hello from the seed script",
	"Notes on the analytical engine",
	"Debugging, literally",
	"On computable numbers",
	"Hello again",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	log.Printf("Connecting to database...")
	db, err := postgresRepo.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgresRepo.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	gormDB, err := postgresRepo.NewGormDB(db)
	if err != nil {
		log.Fatalf("Failed to initialize ORM: %v", err)
	}

	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(gormDB)
	userService := users.NewUserService(userRepo)
	postService := posts.NewPostService(postRepo)
	voteService := votes.NewVoteService(postgresRepo.NewVoteRepository(gormDB), votes.NewFuncSubjectValidator(nil))

	var userIDs []int64
	for _, req := range demoUsers {
		req.Password = demoPassword
		user, err := userService.CreateUser(ctx, req)
		if errors.Is(err, users.ErrEmailTaken) {
			user, err = userRepo.GetByEmail(ctx, req.Email)
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", req.Email, err)
		}
		userIDs = append(userIDs, user.ID)
	}
	log.Printf("Seeded %d users (password %q)", len(userIDs), demoPassword)

	var postIDs []int64
	for i, title := range demoTitles {
		author := userIDs[i%len(userIDs)]
		post, err := postService.CreatePost(ctx, author, posts.PostInput{
			Title:     title,
			Content:   fmt.Sprintf("Demo content #%d", i+1),
			Published: i%4 != 3,
		})
		if err != nil {
			log.Fatalf("Failed to create post %q: %v", title, err)
		}
		postIDs = append(postIDs, post.ID)
	}
	log.Printf("Seeded %d posts", len(postIDs))

	totalVotes := 0
	for _, postID := range postIDs {
		for _, userID := range userIDs {
			if rand.Intn(2) == 0 {
				continue
			}
			err := voteService.Vote(ctx, userID, votes.VoteRequest{PostID: postID, Dir: votes.DirAdd})
			if errors.Is(err, votes.ErrVoteAlreadyExists) {
				continue
			}
			if err != nil {
				log.Printf("Warning: failed to vote on post %d as user %d: %v", postID, userID, err)
				continue
			}
			totalVotes++
		}
	}
	log.Printf("Seeded %d votes", totalVotes)
}
