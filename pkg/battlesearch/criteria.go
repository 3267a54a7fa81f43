package battlesearch

// criteria holds the result filters derived from SearchOptions.
// A nil *criteria lets every battle the player took part in through.
type criteria struct {
	winsOnly     bool
	forfeitsOnly bool
}

// newCriteria returns nil when no filter is enabled.
func newCriteria(winsOnly, forfeitsOnly bool) *criteria {
	if !winsOnly && !forfeitsOnly {
		return nil
	}
	return &criteria{winsOnly: winsOnly, forfeitsOnly: forfeitsOnly}
}

// allowsResult reports whether a battle the searched player did or did not
// win passes the wins-only filter.
func (c *criteria) allowsResult(searchedUserWon bool) bool {
	if c == nil || !c.winsOnly {
		return true
	}
	return searchedUserWon
}

// allowsEnd reports whether a battle passes the forfeits-only filter.
func (c *criteria) allowsEnd(isForfeit bool) bool {
	if c == nil || !c.forfeitsOnly {
		return true
	}
	return isForfeit
}
