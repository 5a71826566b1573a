package main

import (
	"github.com/StudyHive/course_service/config"
	"github.com/StudyHive/course_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
