package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"notecage/internal/config"
	"notecage/internal/protocol"
	"notecage/internal/provider"
	"notecage/internal/runner"
	"notecage/internal/telemetry"
	"notecage/memory"
)

func main() {
	chatMode := flag.Bool("chat", false, "plain chat with the model instead of the agent environment")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	systemPrompt := runner.AgentSystemPrompt
	if cfg.SystemPromptPath != "" {
		b, err := os.ReadFile(cfg.SystemPromptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: read system prompt: %v\n", err)
			os.Exit(1)
		}
		systemPrompt = string(b)
	}

	client := provider.New(cfg.OllamaHost, cfg.APIKey, cfg.Model)

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	// Startup diagnostic: an unreachable backend is fatal before any turn; a
	// merely missing model is a warning, the pull may still be in flight.
	fmt.Printf("Attempting to connect to Ollama at host: %s\n", cfg.OllamaHost)
	available, err := client.AvailableModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not reach Ollama at %s: %v\n", cfg.OllamaHost, err)
		os.Exit(1)
	}
	switch {
	case len(available) == 0:
		fmt.Println("Warning: no models installed on the backend.")
	case !slices.Contains(available, cfg.Model):
		fmt.Printf("Warning: model %q not found in available models: %v\n", cfg.Model, available)
		fmt.Printf("Please ensure the model is pulled, e.g. 'ollama pull %s'\n", cfg.Model)
	default:
		fmt.Printf("Successfully found model %q in available models.\n", cfg.Model)
	}
	fmt.Printf("Client initialized. Using model: %s\n", cfg.Model)

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	if *chatMode {
		runChat(ctx, client, inputCh)
		return
	}
	runAgent(ctx, client, systemPrompt, inputCh)
}

// readLine blocks for the next operator line, honouring shutdown.
func readLine(ctx context.Context, inputCh <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-inputCh:
		return line, ok
	}
}

func printBanner(model, systemPrompt string) {
	fmt.Printf("\n--- Agent Environment Active (%s) ---\n", model)
	fmt.Println("The model generates commands. System responses can be overridden.")
	fmt.Println("Press Enter to use the default system response, or type your own.")
	fmt.Println("Type 'exit' or 'quit' to end. Type 'clear' to reset.")
	fmt.Printf("Initial system prompt sent to the model:\n%s...\n%s\n", truncate(systemPrompt, 300), strings.Repeat("-", 30))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// runAgent is the constrained-environment loop: the model emits commands,
// the engine interprets them, the operator may override each response.
func runAgent(ctx context.Context, client *provider.Client, systemPrompt string, inputCh <-chan string) {
	fmt.Println("Initializing agent constrained environment...")
	engine := runner.NewEngine(systemPrompt)
	printBanner(client.Model(), systemPrompt)

	for {
		if ctx.Err() != nil {
			return
		}
		tctx := telemetry.WithTurnID(ctx, fmt.Sprintf("turn-%d", time.Now().UnixNano()))

		fmt.Println("\nLLM is thinking...")
		raw, err := client.Generate(tctx, engine.History())
		if err != nil {
			// Backend failure is a turn, not a crash: the model gets to see
			// that its environment is struggling.
			raw = protocol.Render(protocol.ErrorResponse{Reason: protocol.GenerationFailedReason(err)})
		}
		fmt.Printf("LLM Raw Output: %s\n", strings.TrimSpace(raw))

		turn := engine.ProcessOutput(tctx, raw)
		switch {
		case turn.Violation:
			fmt.Println("Formatting error by LLM: included 'assistant>' prefix.")
			fmt.Printf("LLM Command (intended, after stripping prefix): %s\n", turn.Command)
		case turn.Command != strings.TrimSpace(raw):
			fmt.Printf("LLM Command (after <think> strip): %s\n", turn.Command)
		}
		if turn.Command == "" && strings.TrimSpace(raw) != "" {
			fmt.Println("Warning: LLM output effectively empty after stripping.")
		}

		fmt.Printf("System Response (default: '%s') or type 'exit'/'quit'/'clear':\nYou > ", turn.Suggested)
		line, ok := readLine(ctx, inputCh)
		if !ok {
			fmt.Println("Exiting agent environment.")
			return
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			fmt.Println("Exiting agent environment.")
			return
		case "clear":
			engine.Reset(systemPrompt)
			fmt.Println("--- Conversation history cleared. ---")
			printBanner(client.Model(), systemPrompt)
			continue
		}

		actual := strings.TrimSpace(line)
		if actual == "" {
			actual = turn.Suggested
		}
		fmt.Printf("To LLM: system> %s\n", actual)
		engine.CommitResponse(actual)
	}
}

// runChat is the plain conversational mode, kept alongside the agent
// environment. No command interpretation, no system prompt.
func runChat(ctx context.Context, client *provider.Client, inputCh <-chan string) {
	fmt.Printf("\nChat with %s via Ollama.\n", client.Model())
	fmt.Println("Type 'exit' or 'quit' to end the chat. Type 'clear' to reset.")
	fmt.Println(strings.Repeat("-", 30))

	conv := memory.NewConversation("")
	for {
		fmt.Print("You: ")
		line, ok := readLine(ctx, inputCh)
		if !ok {
			fmt.Println("\nExiting chat.")
			return
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			fmt.Println("Exiting chat.")
			return
		case "clear":
			conv.Clear("")
			fmt.Println("--- Conversation history cleared. ---")
			continue
		}

		conv.Append(memory.RoleUser, line)
		fmt.Println("LLM is thinking...")
		out, err := client.Generate(ctx, conv.History())
		if err != nil {
			out = protocol.Render(protocol.ErrorResponse{Reason: protocol.GenerationFailedReason(err)})
		}
		fmt.Printf("LLM: %s\n", out)
		conv.Append(memory.RoleAssistant, out)
	}
}
