package main

// @title Star Wars API
// @version 1.0
// @description REST backend for Star Wars characters, planets, users and favorites with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name People
// @tag.description Character management endpoints

// @tag.name Planets
// @tag.description Planet management endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Favorites
// @tag.description Favorite management endpoints

// @tag.name Health
// @tag.description Health check endpoints
