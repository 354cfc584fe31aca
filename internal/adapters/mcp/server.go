// Package mcp exposes the orchestrator to MCP clients, so agent tooling can
// inspect recipes and dry-run the outcome pipeline.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/gantry"
	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/outcome"
)

// Server wraps the Orchestrator and exposes it as an MCP server.
type Server struct {
	orc       *gantry.Orchestrator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(orc *gantry.Orchestrator) *Server {
	s := &Server{
		orc:       orc,
		mcpServer: server.NewMCPServer("gantry-mcp", gantry.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: list_recipes
	s.mcpServer.AddTool(mcp.NewTool("list_recipes",
		mcp.WithDescription("List the IDs of all recipes in the catalog."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strings.Join(s.orc.Recipes(), "\n")), nil
	})

	// TOOL: inspect_recipe
	inspectTool := mcp.NewTool("inspect_recipe",
		mcp.WithDescription("Get the full definition of a recipe: steps, outcomes, transitions and the iteration guardrail."),
		mcp.WithString("recipe_id", mcp.Required(), mcp.Description("The recipe ID to inspect")),
		mcp.WithOutputSchema[domain.Recipe](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspectRecipe))

	// TOOL: extract_outcome
	extractTool := mcp.NewTool("extract_outcome",
		mcp.WithDescription("Run the outcome extractor over a raw agent reply against a set of accepted tags."),
		mcp.WithString("reply", mcp.Required(), mcp.Description("The agent's full textual reply")),
		mcp.WithString("outcomes", mcp.Required(), mcp.Description("Comma-separated list of accepted outcome tags")),
		mcp.WithOutputSchema[domain.OutcomeResult](),
	)
	s.mcpServer.AddTool(extractTool, mcp.NewStructuredToolHandler(s.handleExtractOutcome))

	// TOOL: next_action
	nextTool := mcp.NewTool("next_action",
		mcp.WithDescription("Compute the transition a step takes for a given outcome tag."),
		mcp.WithString("recipe_id", mcp.Required(), mcp.Description("The recipe ID")),
		mcp.WithString("step", mcp.Required(), mcp.Description("The step name within the recipe")),
		mcp.WithString("outcome", mcp.Required(), mcp.Description("The outcome tag to resolve")),
		mcp.WithOutputSchema[domain.NextAction](),
	)
	s.mcpServer.AddTool(nextTool, mcp.NewStructuredToolHandler(s.handleNextAction))
}

func (s *Server) handleInspectRecipe(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Recipe, error) {
	id, _ := args["recipe_id"].(string)

	recipe, err := s.orc.Recipe(id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return *recipe, nil
}

func (s *Server) handleExtractOutcome(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.OutcomeResult, error) {
	reply, _ := args["reply"].(string)
	rawTags, _ := args["outcomes"].(string)

	var tags []domain.Tag
	for _, part := range strings.Split(rawTags, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, domain.Tag(trimmed))
		}
	}
	if len(tags) == 0 {
		return domain.OutcomeResult{}, fmt.Errorf("outcomes must name at least one tag")
	}

	return outcome.Extract(reply, domain.NewTagSet(tags...)), nil
}

func (s *Server) handleNextAction(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.NextAction, error) {
	recipeID, _ := args["recipe_id"].(string)
	stepName, _ := args["step"].(string)
	tag, _ := args["outcome"].(string)

	recipe, err := s.orc.Recipe(recipeID)
	if err != nil {
		return domain.NextAction{}, err
	}

	var step *domain.Step
	for i := range recipe.Steps {
		if recipe.Steps[i].Name == stepName {
			step = &recipe.Steps[i]
			break
		}
	}
	if step == nil {
		return domain.NextAction{}, fmt.Errorf("%w: %q in recipe %q", domain.ErrUnknownStep, stepName, recipeID)
	}

	return s.orc.NextAction(step, domain.Tag(tag)), nil
}
