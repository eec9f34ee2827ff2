// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100

	rateLimitCredit = 1
	rateBurstCredit = 5
)

// Balances - account balance access
type Balances interface {
	Balance(account.Account) uint64
	Credit(account.Account, uint64) (uint64, error)
}

// Ledger - type for RPC calls
type Ledger struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	CreditLimiter *rate.Limiter
	Balances      Balances
	AllowCredit   bool
}

// New - create the ledger RPC service
//
// credit is only served when allowCredit is set
func New(log *logger.L, balances Balances, allowCredit bool) *Ledger {
	return &Ledger{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		CreditLimiter: rate.NewLimiter(rateLimitCredit, rateBurstCredit),
		Balances:      balances,
		AllowCredit:   allowCredit,
	}
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Account account.Account `json:"account"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Account account.Account `json:"account"`
	Balance uint64          `json:"balance,string"`
}

// Balance - read the balance of an account
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	reply.Account = arguments.Account
	reply.Balance = l.Balances.Balance(arguments.Account)
	return nil
}

// CreditArguments - arguments for RPC
type CreditArguments struct {
	Account account.Account `json:"account"`
	Amount  uint64          `json:"amount,string"`
}

// Credit - add funds to an account, for test deployments only
func (l *Ledger) Credit(arguments *CreditArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.CreditLimiter); err != nil {
		return err
	}

	if !l.AllowCredit {
		l.Log.Warn("Ledger.Credit: rejected, credit is not enabled")
		return fault.ErrCreditNotAllowed
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	l.Log.Infof("Ledger.Credit: %+v", arguments)

	balance, err := l.Balances.Credit(arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = balance
	return nil
}
