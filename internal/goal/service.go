package goal

import (
	"time"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/savings"
	"github.com/jpdeguzman/alkansave/internal/utils"
)

type Service interface {
	Create(userID uint, dto CreateGoalDTO) (*GoalResponse, error)
	List(userID uint) ([]GoalResponse, error)
	Update(id, userID uint, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(id, userID uint) error
	Deposit(id, userID uint, dto DepositDTO) (*GoalResponse, error)
	ListDeposits(id, userID uint) ([]savings.Transaction, error)
}

type service struct {
	repo        Repository
	savingsRepo savings.Repository
}

func NewService(repo Repository, savingsRepo savings.Repository) Service {
	return &service{repo: repo, savingsRepo: savingsRepo}
}

func (s *service) Create(userID uint, dto CreateGoalDTO) (*GoalResponse, error) {
	if dto.GoalName == "" {
		return nil, apperror.Validation("Goal name is required")
	}
	if dto.TargetAmount <= 0 {
		return nil, apperror.Validation("Target amount must be positive")
	}

	g := Goal{
		UserID:       userID,
		CategoryID:   dto.CategoryID,
		GoalName:     dto.GoalName,
		TargetAmount: dto.TargetAmount,
		Status:       GoalStatusActive,
	}

	if err := s.repo.Create(&g); err != nil {
		return nil, apperror.Persistence("Failed to create goal", err)
	}
	return toResponse(&g), nil
}

func (s *service) List(userID uint) ([]GoalResponse, error) {
	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, apperror.Persistence("Failed to list goals", err)
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *toResponse(&goals[i]))
	}
	return responses, nil
}

func (s *service) Update(id, userID uint, dto UpdateGoalDTO) (*GoalResponse, error) {
	g, err := s.ownedGoal(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.CategoryID != nil {
		g.CategoryID = *dto.CategoryID
	}
	if dto.GoalName != nil {
		g.GoalName = *dto.GoalName
	}
	if dto.TargetAmount != nil {
		if *dto.TargetAmount <= 0 {
			return nil, apperror.Validation("Target amount must be positive")
		}
		g.TargetAmount = *dto.TargetAmount
	}

	if err := s.repo.Update(g); err != nil {
		return nil, apperror.Persistence("Failed to update goal", err)
	}
	return toResponse(g), nil
}

func (s *service) Delete(id, userID uint) error {
	if _, err := s.ownedGoal(id, userID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return apperror.Persistence("Failed to delete goal", err)
	}
	return nil
}

// Deposit appends a savings transaction and rolls the amount into the goal.
// Reaching the target completes the goal and stamps the completion date.
func (s *service) Deposit(id, userID uint, dto DepositDTO) (*GoalResponse, error) {
	g, err := s.ownedGoal(id, userID)
	if err != nil {
		return nil, err
	}
	if dto.Amount <= 0 {
		return nil, apperror.Validation("Deposit amount must be positive")
	}

	dateSaved := utils.NewDate(time.Now().Year(), time.Now().Month(), time.Now().Day())
	if dto.DateSaved != "" {
		parsed, err := utils.ParseDate(dto.DateSaved)
		if err != nil {
			return nil, apperror.Validation("Invalid date")
		}
		dateSaved = parsed
	}

	txn := savings.Transaction{
		GoalID:    g.GoalID,
		Amount:    dto.Amount,
		DateSaved: dateSaved,
	}

	g.SavedAmount += dto.Amount
	if g.Status == GoalStatusActive && g.SavedAmount >= g.TargetAmount {
		g.Status = GoalStatusCompleted
		g.CompletionDate = &dateSaved
	}

	if err := s.repo.SaveWithTransaction(g, &txn); err != nil {
		return nil, apperror.Persistence("Failed to record deposit", err)
	}
	return toResponse(g), nil
}

func (s *service) ListDeposits(id, userID uint) ([]savings.Transaction, error) {
	if _, err := s.ownedGoal(id, userID); err != nil {
		return nil, err
	}
	txns, err := s.savingsRepo.ListByGoalID(id)
	if err != nil {
		return nil, apperror.Persistence("Failed to list deposits", err)
	}
	return txns, nil
}

func (s *service) ownedGoal(id, userID uint) (*Goal, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperror.Persistence("Failed to load goal", err)
	}
	if g == nil {
		return nil, apperror.NotFound("Goal not found")
	}
	if g.UserID != userID {
		return nil, apperror.Unauthorized("unauthorized")
	}
	return g, nil
}

func toResponse(g *Goal) *GoalResponse {
	return &GoalResponse{
		GoalID:         g.GoalID,
		CategoryID:     g.CategoryID,
		GoalName:       g.GoalName,
		TargetAmount:   g.TargetAmount,
		SavedAmount:    g.SavedAmount,
		Status:         g.Status,
		CompletionDate: g.CompletionDate,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
