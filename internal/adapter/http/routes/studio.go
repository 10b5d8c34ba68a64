package routes

import (
	"studioflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathProjects  = "/projects"
	PathFinance   = "/finance"
	PathTemplates = "/templates"
)

func addStudioRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	projectHandler *handlers.ProjectHandler,
	financeHandler *handlers.FinanceHandler,
	templateHandler *handlers.TemplateHandler,
) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id/send", budgetHandler.SendBudget)
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)
		budgets.POST("/:id/followups", budgetHandler.LogFollowup)
		budgets.POST("/:id/proposal", budgetHandler.GenerateProposal)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/advance", projectHandler.AdvanceProject)
		projects.PATCH("/:id/retreat", projectHandler.RetreatProject)
		projects.PATCH("/:id/finalize", projectHandler.FinalizeProject)
		projects.POST("/:id/hours", projectHandler.LogHours)
		projects.GET("/:id/finance", financeHandler.ListProjectFinance)
	}

	finance := rg.Group(PathFinance)
	{
		finance.POST("/:entry_id/settle", financeHandler.SettleEntry)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.GET("/:service_id", templateHandler.GetTemplate)
		templates.PUT("/:service_id", templateHandler.UpdateTemplate)
		templates.POST("/:service_id/phases", templateHandler.AddPhase)
		templates.PATCH("/:service_id/phases/:phase_id", templateHandler.EditPhase)
		templates.DELETE("/:service_id/phases/:phase_id", templateHandler.RemovePhase)
		templates.PATCH("/:service_id/phases/:phase_id/move", templateHandler.MovePhase)
		templates.POST("/:service_id/phases/:phase_id/steps", templateHandler.AddStep)
		templates.PATCH("/:service_id/phases/:phase_id/steps/:step_id", templateHandler.EditStep)
		templates.DELETE("/:service_id/phases/:phase_id/steps/:step_id", templateHandler.RemoveStep)
	}
}
