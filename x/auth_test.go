package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/weavetest"
	"github.com/iov-one/tollgate/x"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()
	c := weavetest.NewCondition()

	ctxAuth := &weavetest.CtxAuth{Key: "auth"}
	ctx := ctxAuth.SetConditions(context.Background(), a)
	auth := x.ChainAuth(ctxAuth, &weavetest.Auth{Signers: []tollgate.Condition{b}})

	assert.Equal(t, []tollgate.Condition{a, b}, auth.GetConditions(ctx))
	assert.Equal(t, a, x.MainSigner(ctx, auth))
	assert.Equal(t, []tollgate.Address{a.Address(), b.Address()}, x.GetAddresses(ctx, auth))

	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))

	assert.True(t, x.HasAllAddresses(ctx, auth, []tollgate.Address{a.Address(), b.Address()}))
	assert.False(t, x.HasAllAddresses(ctx, auth, []tollgate.Address{a.Address(), c.Address()}))
	assert.True(t, x.HasAllConditions(ctx, auth, []tollgate.Condition{b}))
	assert.False(t, x.HasAllConditions(ctx, auth, []tollgate.Condition{c}))

	assert.Nil(t, x.MainSigner(context.Background(), ctxAuth))
}
