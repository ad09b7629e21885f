package engine

import (
	"context"

	"github.com/nixinlabs/nixin/internal/dispatch"
	"github.com/nixinlabs/nixin/internal/memory"
	"github.com/nixinlabs/nixin/internal/nlp"
	"github.com/nixinlabs/nixin/internal/provider"
	"github.com/nixinlabs/nixin/internal/reasoning"
	"github.com/nixinlabs/nixin/internal/recall"
	"github.com/nixinlabs/nixin/internal/utils"
)

// Turn captures one processed utterance end to end.
type Turn struct {
	Input    string
	Analysis nlp.AnalysisResult
	Plan     reasoning.ActionPlan
	Reply    string
}

// Assistant wires analysis, planning and dispatch around one memory store.
type Assistant struct {
	store      *memory.Store
	planner    *reasoning.Planner
	dispatcher *dispatch.Dispatcher
	recall     *recall.Engine
	strategy   string
}

// New builds an assistant over the given store, selecting the recall
// similarity strategy from config. The embedding strategy needs a
// configured provider; when none is available the assistant falls back
// to the lexical strategy so recall keeps working offline.
func New(store *memory.Store, cfg *utils.Config) *Assistant {
	sim := selectSimilarity(cfg)
	recallEngine := recall.NewEngine(store, sim)
	return &Assistant{
		store:      store,
		planner:    reasoning.NewPlanner(store, recallEngine),
		dispatcher: dispatch.NewDispatcher(store),
		recall:     recallEngine,
		strategy:   sim.Name(),
	}
}

func selectSimilarity(cfg *utils.Config) recall.Similarity {
	if cfg.Recall.Strategy == utils.RecallStrategyEmbedding && cfg.Model.EmbeddingModel != nil {
		model := *cfg.Model.EmbeddingModel
		embeddingClient, err := provider.NewEmbeddingClient(cfg, model.Provider)
		if err == nil {
			return recall.NewEmbeddingSimilarity(embeddingClient, model)
		}
	}
	return recall.NewLexicalSimilarity()
}

// Strategy reports the active recall similarity strategy.
func (a *Assistant) Strategy() string {
	return a.strategy
}

// Analyze runs intent and entity analysis without touching the store.
func (a *Assistant) Analyze(input string) nlp.AnalysisResult {
	return nlp.Analyze(input)
}

// Plan derives the action for an analyzed utterance without executing it.
func (a *Assistant) Plan(ctx context.Context, analysis nlp.AnalysisResult, input string) reasoning.ActionPlan {
	return a.planner.Plan(ctx, analysis, input)
}

// Dispatch executes a plan and returns the assistant reply.
func (a *Assistant) Dispatch(plan reasoning.ActionPlan, input string) (string, error) {
	return a.dispatcher.Dispatch(plan, input)
}

// Recall searches past turns for the closest match to the query
// without recording the query in history.
func (a *Assistant) Recall(ctx context.Context, query string) (*recall.Result, error) {
	return a.recall.Search(ctx, query)
}

// Process runs one utterance through the full pipeline: analyze, plan,
// then dispatch. The dispatch step records the utterance in history.
func (a *Assistant) Process(ctx context.Context, input string) (*Turn, error) {
	analysis := nlp.Analyze(input)
	plan := a.planner.Plan(ctx, analysis, input)
	reply, err := a.dispatcher.Dispatch(plan, input)
	if err != nil {
		return nil, err
	}
	return &Turn{
		Input:    input,
		Analysis: analysis,
		Plan:     plan,
		Reply:    reply,
	}, nil
}
