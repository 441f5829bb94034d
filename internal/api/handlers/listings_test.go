package handlers

import (
	"net/url"
	"testing"
)

func TestCriteriaFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("city", "Nagpur")
	q.Set("property_type", "Office Space")
	q.Set("furnishing", "furnished")
	q.Set("rent", "below 50000")
	q.Set("size", "between 500 and 2000")
	q.Set("security_deposit", "100000")
	q.Set("facilities", "Parking, Security Guards ,")
	q.Set("floor", "2nd floor")

	c, err := criteriaFromQuery(q)
	if err != nil {
		t.Fatalf("criteriaFromQuery() error = %v", err)
	}

	if c.City != "Nagpur" || c.PropertyType != "Office Space" || c.Furnishing != "furnished" {
		t.Errorf("text fields not mapped: %+v", c)
	}
	if c.MinRent != nil || c.MaxRent == nil || *c.MaxRent != 50000 {
		t.Errorf("rent bound = (%v, %v), want (nil, 50000)", c.MinRent, c.MaxRent)
	}
	if c.MinSize == nil || *c.MinSize != 500 || c.MaxSize == nil || *c.MaxSize != 2000 {
		t.Errorf("size bound = (%v, %v), want (500, 2000)", c.MinSize, c.MaxSize)
	}
	// bare amount means exact match
	if c.MinDeposit == nil || *c.MinDeposit != 100000 || c.MaxDeposit == nil || *c.MaxDeposit != 100000 {
		t.Errorf("deposit bound = (%v, %v), want (100000, 100000)", c.MinDeposit, c.MaxDeposit)
	}
	if len(c.Facilities) != 2 || c.Facilities[0] != "Parking" || c.Facilities[1] != "Security Guards" {
		t.Errorf("facilities = %v, want [Parking, Security Guards]", c.Facilities)
	}
	if c.Floor != "2nd floor" {
		t.Errorf("floor = %q", c.Floor)
	}
}

func TestCriteriaFromQueryEmpty(t *testing.T) {
	c, err := criteriaFromQuery(url.Values{})
	if err != nil {
		t.Fatalf("criteriaFromQuery() error = %v", err)
	}
	if c.MinRent != nil || c.Facilities != nil || c.City != "" {
		t.Errorf("empty query produced constraints: %+v", c)
	}
}

func TestCriteriaFromQueryBadBound(t *testing.T) {
	q := url.Values{}
	q.Set("rent", "cheap please")

	if _, err := criteriaFromQuery(q); err == nil {
		t.Error("criteriaFromQuery() expected error for unparseable bound")
	}
}
