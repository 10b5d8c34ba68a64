package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"studioflow/internal/usecase/interfaces"
)

var ErrGeneratorNotConfigured = errors.New("text generator not configured")

// IProposalUseCase produces client-facing proposal text for a budget via
// the generative collaborator. A generation failure is surfaced unchanged
// and never touches budget state.

type IProposalUseCase interface {
	GenerateProposal(ctx context.Context, budgetID string) (string, error)
}

type ProposalUseCase struct {
	budgets   interfaces.IBudgetRepository
	templates interfaces.ITemplateSource
	generator interfaces.ITextGenerator
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(budgets interfaces.IBudgetRepository, templates interfaces.ITemplateSource, generator interfaces.ITextGenerator) *ProposalUseCase {
	return &ProposalUseCase{budgets: budgets, templates: templates, generator: generator}
}

func (u *ProposalUseCase) GenerateProposal(ctx context.Context, budgetID string) (string, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return "", ErrInvalidBudgetID
	}
	if u.generator == nil {
		return "", ErrGeneratorNotConfigured
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return "", err
	}
	if b.ID == "" {
		return "", ErrBudgetNotFound
	}

	tpl, err := u.templates.Resolve(ctx, b.OfficeID, b.ServiceID)
	if err != nil {
		return "", err
	}

	var phaseNames []string
	for _, p := range tpl.Phases {
		for _, scoped := range b.Scope {
			if p.ID == scoped {
				phaseNames = append(phaseNames, p.Name)
			}
		}
	}

	prompt := fmt.Sprintf(
		"Escreva um texto de proposta comercial para o cliente %s, serviço %s, "+
			"valor R$ %.2f, prazo estimado de %d horas, contemplando as etapas: %s. "+
			"Tom profissional e acolhedor, no máximo três parágrafos.",
		b.Client.Name, b.ServiceID, b.Value, b.EstimatedHours, strings.Join(phaseNames, ", "),
	)

	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[proposal][usecase] generation failed budget_id=%s err=%v", budgetID, err)
		return "", err
	}
	return text, nil
}
