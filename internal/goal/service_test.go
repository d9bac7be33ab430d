package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/savings"
	"github.com/jpdeguzman/alkansave/internal/utils"
)

type fakeGoalRepo struct {
	goals   map[uint]*Goal
	deleted []uint
	savedTx *savings.Transaction
}

func newFakeGoalRepo(goals ...*Goal) *fakeGoalRepo {
	repo := &fakeGoalRepo{goals: map[uint]*Goal{}}
	for _, g := range goals {
		repo.goals[g.GoalID] = g
	}
	return repo
}

func (f *fakeGoalRepo) Create(g *Goal) error {
	g.GoalID = uint(len(f.goals) + 1)
	f.goals[g.GoalID] = g
	return nil
}

func (f *fakeGoalRepo) FindAllByUserID(userID uint) ([]Goal, error) {
	var out []Goal
	for _, g := range f.goals {
		if g.UserID == userID && !g.IsDeleted {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) FindByID(id uint) (*Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.IsDeleted {
		return nil, nil
	}
	return g, nil
}

func (f *fakeGoalRepo) Update(g *Goal) error {
	f.goals[g.GoalID] = g
	return nil
}

func (f *fakeGoalRepo) SoftDelete(id uint) error {
	f.deleted = append(f.deleted, id)
	f.goals[id].IsDeleted = true
	return nil
}

func (f *fakeGoalRepo) SaveWithTransaction(g *Goal, txn *savings.Transaction) error {
	f.goals[g.GoalID] = g
	f.savedTx = txn
	return nil
}

type fakeSavingsRepo struct {
	txns []savings.Transaction
}

func (f *fakeSavingsRepo) Create(txn *savings.Transaction) error {
	f.txns = append(f.txns, *txn)
	return nil
}

func (f *fakeSavingsRepo) ListByGoalID(goalID uint) ([]savings.Transaction, error) {
	return f.txns, nil
}

func activeGoal() *Goal {
	return &Goal{
		GoalID:       1,
		UserID:       7,
		CategoryID:   2,
		GoalName:     "Laptop",
		TargetAmount: 500,
		SavedAmount:  300,
		Status:       GoalStatusActive,
	}
}

func TestCreateGoal(t *testing.T) {
	svc := NewService(newFakeGoalRepo(), &fakeSavingsRepo{})

	t.Run("Valid", func(t *testing.T) {
		resp, err := svc.Create(7, CreateGoalDTO{CategoryID: 2, GoalName: "Laptop", TargetAmount: 500})
		require.NoError(t, err)
		assert.Equal(t, GoalStatusActive, resp.Status)
		assert.Equal(t, float64(0), resp.SavedAmount)
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := svc.Create(7, CreateGoalDTO{TargetAmount: 500})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("NonPositiveTarget", func(t *testing.T) {
		_, err := svc.Create(7, CreateGoalDTO{GoalName: "Laptop", TargetAmount: 0})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})
}

func TestDeposit(t *testing.T) {
	t.Run("Accumulates", func(t *testing.T) {
		repo := newFakeGoalRepo(activeGoal())
		svc := NewService(repo, &fakeSavingsRepo{})

		resp, err := svc.Deposit(1, 7, DepositDTO{Amount: 50, DateSaved: "2024-04-10"})
		require.NoError(t, err)

		assert.Equal(t, float64(350), resp.SavedAmount)
		assert.Equal(t, GoalStatusActive, resp.Status)
		assert.Nil(t, resp.CompletionDate)

		require.NotNil(t, repo.savedTx)
		assert.Equal(t, float64(50), repo.savedTx.Amount)
		assert.Equal(t, "2024-04-10", repo.savedTx.DateSaved.String())
	})

	t.Run("CompletesAtTarget", func(t *testing.T) {
		repo := newFakeGoalRepo(activeGoal())
		svc := NewService(repo, &fakeSavingsRepo{})

		resp, err := svc.Deposit(1, 7, DepositDTO{Amount: 200, DateSaved: "2024-04-10"})
		require.NoError(t, err)

		assert.Equal(t, GoalStatusCompleted, resp.Status)
		require.NotNil(t, resp.CompletionDate)
		assert.Equal(t, "2024-04-10", resp.CompletionDate.String())
	})

	t.Run("CompletedGoalStaysCompleted", func(t *testing.T) {
		g := activeGoal()
		g.Status = GoalStatusCompleted
		done := utils.NewDate(2024, time.March, 1)
		g.CompletionDate = &done

		svc := NewService(newFakeGoalRepo(g), &fakeSavingsRepo{})

		resp, err := svc.Deposit(1, 7, DepositDTO{Amount: 500, DateSaved: "2024-04-10"})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", resp.CompletionDate.String())
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(activeGoal()), &fakeSavingsRepo{})

		_, err := svc.Deposit(1, 7, DepositDTO{Amount: -5})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("InvalidDate", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(activeGoal()), &fakeSavingsRepo{})

		_, err := svc.Deposit(1, 7, DepositDTO{Amount: 5, DateSaved: "soon"})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(activeGoal()), &fakeSavingsRepo{})

		_, err := svc.Deposit(1, 99, DepositDTO{Amount: 5})
		require.Error(t, err)
		assert.Equal(t, 401, apperror.StatusOf(err))
	})

	t.Run("Missing", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(), &fakeSavingsRepo{})

		_, err := svc.Deposit(1, 7, DepositDTO{Amount: 5})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.StatusOf(err))
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("PartialUpdate", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(activeGoal()), &fakeSavingsRepo{})

		name := "Gaming Laptop"
		resp, err := svc.Update(1, 7, UpdateGoalDTO{GoalName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Gaming Laptop", resp.GoalName)
		assert.Equal(t, float64(500), resp.TargetAmount)
	})

	t.Run("NonPositiveTarget", func(t *testing.T) {
		svc := NewService(newFakeGoalRepo(activeGoal()), &fakeSavingsRepo{})

		bad := float64(-1)
		_, err := svc.Update(1, 7, UpdateGoalDTO{TargetAmount: &bad})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})
}

func TestDeleteGoal(t *testing.T) {
	repo := newFakeGoalRepo(activeGoal())
	svc := NewService(repo, &fakeSavingsRepo{})

	require.NoError(t, svc.Delete(1, 7))
	assert.Equal(t, []uint{1}, repo.deleted)

	// deleted goals disappear from lists
	goals, err := svc.List(7)
	require.NoError(t, err)
	assert.Empty(t, goals)
}
