package bankcore_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/herrick/bankcore"
	"github.com/herrick/bankcore/mocks"
)

func TestLegacyAPICollapsesErrors(t *testing.T) {
	nooplog := zerolog.Nop()
	acctID := snowflake.ParseInt64(1834563581361305763)

	t.Run("every error kind becomes false", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		api := bankcore.NewLegacyAPI(svc, &nooplog)

		gomock.InOrder(
			svc.EXPECT().DisableAccount(acctID).Return(bankcore.ErrNotFound{Entity: "account"}),
			svc.EXPECT().AddUser(gomock.Any()).Return(nil, bankcore.ErrDuplicate{Field: "username"}),
			svc.EXPECT().UpdateBasicUserInfo("jdoe", gomock.Any()).Return(bankcore.ErrBadRequest{}),
			svc.EXPECT().EnableAccount(acctID).Return(errors.New("connection refused")),
		)

		as.False(api.DisableAccount(acctID))
		as.False(api.AddUser(bankcore.AddUserReq{}))
		as.False(api.UpdateBasicUserInfo("jdoe", bankcore.UserInfoUpdate{}))
		as.False(api.EnableAccount(acctID))
	})

	t.Run("success becomes true", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		api := bankcore.NewLegacyAPI(svc, &nooplog)

		svc.EXPECT().FlagAccount(acctID).Return(nil)
		svc.EXPECT().
			UpdateAccountBalance(acctID, gomock.Any()).
			DoAndReturn(func(_ snowflake.ID, d decimal.Decimal) (*decimal.Decimal, error) {
				return &d, nil
			})

		as.True(api.FlagAccount(acctID))
		as.True(api.UpdateAccountBalance(acctID, decimal.NewFromInt(100)))
	})

	t.Run("read paths pair the value with an ok flag", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		api := bankcore.NewLegacyAPI(svc, &nooplog)

		uid := snowflake.ParseInt64(7241407009730334720)
		gomock.InOrder(
			svc.EXPECT().GetUserIDByUsername("jdoe").Return(uid, nil),
			svc.EXPECT().GetUserIDByUsername("ghost").Return(snowflake.ID(0), bankcore.ErrNotFound{Entity: "user"}),
			svc.EXPECT().GetRecentTransactions(acctID, 10).Return(nil, bankcore.ErrNotFound{Entity: "transactions"}),
		)

		id, ok := api.GetUserIDByUsername("jdoe")
		as.True(ok)
		as.Equal(uid, id)

		_, ok = api.GetUserIDByUsername("ghost")
		as.False(ok)

		txns, ok := api.GetRecentTransactions(acctID, 10)
		as.False(ok)
		as.Nil(txns)
	})
}
