package analyzer

import (
	"testing"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessPriceSanity(t *testing.T) {
	negative := completeProduct("N1")
	negative.Price = fptr(-10)
	zero := completeProduct("Z1")
	zero.Price = fptr(0)

	issues := Business([]catalogdomain.ProductRecord{negative, zero}, testCtx())

	assert.True(t, hasIssue(issues, catalogdomain.IssueNegativePrice, "N1"))
	zeroIssue := findIssue(issues, catalogdomain.IssueZeroPrice, "Z1")
	require.NotNil(t, zeroIssue)
	assert.Equal(t, catalogdomain.SeverityError, zeroIssue.Severity)
}

func TestBusinessRoundPrice(t *testing.T) {
	p := completeProduct("A1")
	p.Price = fptr(5000)

	issues := Business([]catalogdomain.ProductRecord{p}, testCtx())

	found := findIssue(issues, catalogdomain.IssueRoundPrice, "A1")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityWarning, found.Severity)
}

func TestBusinessDiscounts(t *testing.T) {
	invalid := completeProduct("D1")
	invalid.Price = fptr(899)
	invalid.PriceBeforeDiscount = fptr(499)

	big := completeProduct("D2")
	big.Price = fptr(199)
	big.PriceBeforeDiscount = fptr(999)

	issues := Business([]catalogdomain.ProductRecord{invalid, big}, testCtx())

	assert.True(t, hasIssue(issues, catalogdomain.IssueInvalidDiscount, "D1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueBigDiscount, "D2"))
}

func TestBusinessSlowDeliveryInStock(t *testing.T) {
	p := completeProduct("A1")
	p.Stock = fptr(10)
	p.DeliveryDays = iptr(14)

	issues := Business([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueSlowDelivery, "A1"))
}

func TestBusinessActionLifecycle(t *testing.T) {
	permanent := completeProduct("P1")
	permanent.IsAction = true

	expired := completeProduct("P2")
	expired.IsAction = true
	expired.ActionEndDate = tptr(testNow.Add(-48 * time.Hour))

	running := completeProduct("P3")
	running.IsAction = true
	running.ActionEndDate = tptr(testNow.Add(48 * time.Hour))

	issues := Business([]catalogdomain.ProductRecord{permanent, expired, running}, testCtx())

	perm := findIssue(issues, catalogdomain.IssuePermanentAction, "P1")
	require.NotNil(t, perm)
	assert.Equal(t, catalogdomain.SeverityWarning, perm.Severity)

	exp := findIssue(issues, catalogdomain.IssueExpiredAction, "P2")
	require.NotNil(t, exp)
	assert.Equal(t, catalogdomain.SeverityError, exp.Severity)

	assert.False(t, hasIssue(issues, catalogdomain.IssueExpiredAction, "P3"))
	assert.False(t, hasIssue(issues, catalogdomain.IssuePermanentAction, "P3"))
}

func TestBusinessStaleNewFlag(t *testing.T) {
	p := completeProduct("A1")
	p.IsNew = true
	p.CreatedAt = tptr(testNow.Add(-200 * 24 * time.Hour))

	issues := Business([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueOldNewFlag, "A1"))
}

func TestBusinessLongTermInquiry(t *testing.T) {
	p := completeProduct("A1")
	p.Availability = "Na dotaz"
	p.UpdatedAt = tptr(testNow.Add(-60 * 24 * time.Hour))

	issues := Business([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueLongTermInquiry, "A1"))
}
