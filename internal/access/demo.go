// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import "github.com/mehmetakif-git/forfit-api/internal/platform/sec"

// # Demo Principal Table

// demoAccount couples a compiled-in principal with its fixed password.
//
// These four accounts exist for onboarding and product demos. The passwords
// are configuration data, not secrets: they are printed in the onboarding
// docs. The table is consulted before the member directory so a demo account
// can never be shadowed by a directory record with the same email.
type demoAccount struct {
	principal Principal
	password  string
}

// demoAccounts is keyed by exact, case-sensitive email.
var demoAccounts = []demoAccount{
	{
		principal: Principal{
			ID:          "demo-admin",
			Email:       "admin@forfit.qa",
			DisplayName: "Demo Admin",
			Role:        sec.RoleAdmin,
		},
		password: "admin123",
	},
	{
		principal: Principal{
			ID:          "demo-staff",
			Email:       "staff@forfit.qa",
			DisplayName: "Demo Staff",
			Role:        sec.RoleStaff,
		},
		password: "staff123",
	},
	{
		principal: Principal{
			ID:          "demo-trainer",
			Email:       "trainer@forfit.qa",
			DisplayName: "Demo Trainer",
			Role:        sec.RoleTrainer,
		},
		password: "trainer123",
	},
	{
		principal: Principal{
			ID:          "demo-member",
			Email:       "member@forfit.qa",
			DisplayName: "Demo Member",
			Role:        sec.RoleMember,
		},
		password: "member123",
	},
}

// findDemoAccount returns the demo entry for an exact email match, or nil.
func findDemoAccount(email string) *demoAccount {
	for i := range demoAccounts {
		if demoAccounts[i].principal.Email == email {
			return &demoAccounts[i]
		}
	}
	return nil
}
