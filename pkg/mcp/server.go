package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// MCPCalculatorServer encapsulates the MCP server with calculator tools
type MCPCalculatorServer struct {
	server  *server.MCPServer
	calc    *calculator.Calculator
	name    string
	version string
}

// NewMCPCalculatorServer creates a new MCP server exposing calculator tools
func NewMCPCalculatorServer(name, version string) *MCPCalculatorServer {
	s := &MCPCalculatorServer{
		server:  server.NewMCPServer(name, version, server.WithToolCapabilities(false)),
		calc:    calculator.New(),
		name:    name,
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalculatorServer) Server() *server.MCPServer {
	return s.server
}

// Calculator returns the calculator backing the tools
func (s *MCPCalculatorServer) Calculator() *calculator.Calculator {
	return s.calc
}

// registerTools registers all calculator tools
func (s *MCPCalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()

	s.addSumTool()
	s.addMultiplyTool()
	s.addDivideTool()
	s.addLogTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addStatusTool adds the status tool
func (s *MCPCalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version and supported operations"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// addSumTool adds the sum tool
func (s *MCPCalculatorServer) addSumTool() {
	sumTool := mcp.NewTool(string(calculator.OpSum),
		mcp.WithDescription("Add any number of values. Returns 0 for an empty list"),
		mcp.WithArray("values",
			mcp.Required(),
			mcp.Description("Numbers to add"),
		),
	)

	s.server.AddTool(sumTool, s.Sum)
}

// addMultiplyTool adds the multiply tool
func (s *MCPCalculatorServer) addMultiplyTool() {
	multiplyTool := mcp.NewTool(string(calculator.OpMultiply),
		mcp.WithDescription("Multiply two numbers"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First factor"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second factor"),
		),
	)

	s.server.AddTool(multiplyTool, s.Multiply)
}

// addDivideTool adds the divide tool
func (s *MCPCalculatorServer) addDivideTool() {
	divideTool := mcp.NewTool(string(calculator.OpDivide),
		mcp.WithDescription("Divide a by b. Dividing by zero is an error"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Dividend"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Divisor"),
		),
	)

	s.server.AddTool(divideTool, s.Divide)
}

// addLogTool adds the log tool
func (s *MCPCalculatorServer) addLogTool() {
	logTool := mcp.NewTool(string(calculator.OpLog),
		mcp.WithDescription("Logarithm of value in the given base. Value and base must be positive and neither may be 1"),
		mcp.WithNumber("value",
			mcp.Required(),
			mcp.Description("Positive number other than 1 to take the logarithm of"),
		),
		mcp.WithNumber("base",
			mcp.Required(),
			mcp.Description("Positive base other than 1"),
		),
	)

	s.server.AddTool(logTool, s.Log)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// newCalculationErrorResult reports a failed calculation as an ErrorResponse
func newCalculationErrorResult(op calculator.Operation, err error) *mcp.CallToolResult {
	response := types.ErrorResponse{
		Operation: string(op),
		Kind:      string(calculator.Kind(err)),
		Message:   err.Error(),
	}

	jsonBytes, marshalErr := json.Marshal(response)
	if marshalErr != nil {
		return newErrorResult("%v", err)
	}
	return newErrorResult("%s", jsonBytes)
}

// Ping handles the ping command
func (s *MCPCalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - " + s.name + " is connected!"), nil
}

// Status handles the status command
func (s *MCPCalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	ops := s.calc.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Operations: names,
	}

	return newToolResultJSON(response)
}

// Sum handles the sum command
func (s *MCPCalculatorServer) Sum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received sum request")

	valuesVal := request.Params.Arguments["values"]
	values, ok := valuesVal.([]interface{})
	if !ok {
		err := &calculator.OperandError{Op: calculator.OpSum, Index: 0, Value: valuesVal}
		logger.Debug("Rejected sum request", "error", err)
		return newCalculationErrorResult(calculator.OpSum, err), nil
	}

	return s.calculate(calculator.OpSum, values)
}

// Multiply handles the multiply command
func (s *MCPCalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received multiply request")
	return s.calculate(calculator.OpMultiply, binaryArgs(request, "a", "b"))
}

// Divide handles the divide command
func (s *MCPCalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received divide request")
	return s.calculate(calculator.OpDivide, binaryArgs(request, "a", "b"))
}

// Log handles the log command
func (s *MCPCalculatorServer) Log(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received log request")
	return s.calculate(calculator.OpLog, binaryArgs(request, "value", "base"))
}

// binaryArgs returns the named arguments in order. Missing arguments are nil
// and fail the calculator's type check.
func binaryArgs(request mcp.CallToolRequest, first, second string) []interface{} {
	return []interface{}{
		request.Params.Arguments[first],
		request.Params.Arguments[second],
	}
}

// calculate runs op and converts the outcome into a tool result
func (s *MCPCalculatorServer) calculate(op calculator.Operation, args []interface{}) (*mcp.CallToolResult, error) {
	result, err := s.calc.Apply(op, args...)
	if err != nil {
		logger.Debug("Calculation failed", "operation", op, "kind", calculator.Kind(err), "error", err)
		return newCalculationErrorResult(op, err), nil
	}

	operands := make([]types.Number, len(args))
	formatted := make([]string, len(args))
	for i, arg := range args {
		f, _ := calculator.ToFloat(arg)
		operands[i] = types.Number(f)
		formatted[i] = fmt.Sprintf("%v", f)
	}

	response := types.CalculationResponse{
		ID:        uuid.NewString(),
		Operation: string(op),
		Operands:  operands,
		Result:    types.Number(result),
		Timestamp: time.Now(),
		Summary:   fmt.Sprintf("%s(%s) = %v", op, strings.Join(formatted, ", "), result),
	}

	logger.Debug("Calculation succeeded", "id", response.ID, "operation", op, "result", result)
	return newToolResultJSON(response)
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
