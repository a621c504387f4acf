package main

import (
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so logs go to stderr and optionally a file
	var logOutput io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			defer logFile.Close()
			logOutput = io.MultiWriter(os.Stderr, logFile)
		} else {
			logger.Warn("Failed to set up log file", "error", err, "path", cfg.LogFile)
		}
	}
	logger.Configure(cfg.Debug, logOutput)

	logger.Info("Starting MCP Go Calculator", "version", Version, "name", cfg.ServerName)

	calcServer := mcp.NewMCPCalculatorServer(cfg.ServerName, Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
