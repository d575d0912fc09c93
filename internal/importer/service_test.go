package importer_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/fakeapi"
	"github.com/MrJamesThe3rd/finboard/internal/importer"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/user"
)

const extrato = `Data;Histórico;Valor
03/02/2026;PIX ENVIADO ALUGUEL;-1.850,00
10/02/2026;SALARIO;7.200,35
11/02/2026;MERCADO;-230,10
`

func TestService_ImportKeysAreStable(t *testing.T) {
	bankID := uuid.New()

	keysOf := func() map[string]string {
		ctrl := gomock.NewController(t)
		repo := transaction.NewMockRepository(ctrl)

		var (
			mu   sync.Mutex
			keys = map[string]string{}
		)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p transaction.CreateParams) (*transaction.Transaction, error) {
				assert.Equal(t, bankID, *p.BankID)

				mu.Lock()
				keys[p.Description] = apiclient.IdempotencyKey(ctx)
				mu.Unlock()

				return &transaction.Transaction{ID: uuid.New(), Description: p.Description}, nil
			}).
			Times(3)

		res, err := importer.NewService(repo, nil).Import(context.Background(), bankID, strings.NewReader(extrato))
		require.NoError(t, err)
		assert.Equal(t, "extrato", res.Profile)
		require.Len(t, res.Created, 3)
		assert.Equal(t, "SALARIO", res.Created[1].Description)

		return keys
	}

	first, second := keysOf(), keysOf()
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestService_ImportReportsFailedRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p transaction.CreateParams) (*transaction.Transaction, error) {
			if p.Description == "SALARIO" {
				return nil, errors.New("backend down")
			}

			return &transaction.Transaction{ID: uuid.New()}, nil
		}).
		AnyTimes()

	res, err := importer.NewService(repo, nil).Import(context.Background(), uuid.New(), strings.NewReader(extrato))
	assert.ErrorContains(t, err, "row 2 (SALARIO): backend down")
	require.NotNil(t, res)
	assert.Nil(t, res.Created[1])
}

func TestService_ReimportDoesNotDuplicate(t *testing.T) {
	api := fakeapi.New("test-secret", fakeapi.WithBcryptCost(bcrypt.MinCost))
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)

	creds := user.Credentials{Email: "ana@example.com", Password: "secret123"}
	_, err := api.CreateUser(user.RegisterParams{Name: "Ana", Email: creds.Email, Password: creds.Password})
	require.NoError(t, err)

	sess := session.NewMemory("")
	c, err := apiclient.New(ts.URL, sess)
	require.NoError(t, err)

	set := entity.New(c)
	ctx := context.Background()

	auth, err := set.Users.Login(ctx, creds)
	require.NoError(t, err)
	require.NoError(t, sess.SetToken(auth.Token))

	b, err := set.Banks.Create(ctx, bank.CreateParams{Name: "Checking"})
	require.NoError(t, err)

	svc := importer.NewService(set.Transactions, nil)

	first, err := svc.Import(ctx, b.ID, strings.NewReader(extrato))
	require.NoError(t, err)

	second, err := svc.Import(ctx, b.ID, strings.NewReader(extrato))
	require.NoError(t, err)
	assert.Equal(t, first.Created[0].ID, second.Created[0].ID)

	txs, err := set.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}
