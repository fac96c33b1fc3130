package service

import "esportshub/models"

// commitUnit commits a unit of work whose writes span multiple rows.
// A failed commit leaves the commit status of the paired rows unknown,
// so it is reported as a partial failure requiring reconciliation, not
// as a clean rejection.
func commitUnit(uow UnitOfWork, op string) error {
	if err := uow.Commit(); err != nil {
		return models.NewError(models.CodePartialFailure, "%s could not be completed as a unit: %v", op, err)
	}
	return nil
}
