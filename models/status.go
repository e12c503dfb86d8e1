package models

type ReceivingStatus string

const (
	ReceivingTesting  ReceivingStatus = "testing"
	ReceivingApproved ReceivingStatus = "approved"
	ReceivingRejected ReceivingStatus = "rejected"
	ReceivingPending  ReceivingStatus = "pending"
)

var ReceivingStatuses = []ReceivingStatus{ReceivingTesting, ReceivingApproved, ReceivingRejected, ReceivingPending}

func (s ReceivingStatus) Valid() bool {
	for _, v := range ReceivingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type AssetStatus string

const (
	AssetInUse          AssetStatus = "in_use"
	AssetAvailable      AssetStatus = "available"
	AssetMaintenance    AssetStatus = "maintenance"
	AssetDecommissioned AssetStatus = "decommissioned"
)

var AssetStatuses = []AssetStatus{AssetInUse, AssetAvailable, AssetMaintenance, AssetDecommissioned}

func (s AssetStatus) Valid() bool {
	for _, v := range AssetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type DispatchStatus string

const (
	DispatchPending    DispatchStatus = "pending"
	DispatchDispatched DispatchStatus = "dispatched"
	DispatchDelivered  DispatchStatus = "delivered"
)

var DispatchStatuses = []DispatchStatus{DispatchPending, DispatchDispatched, DispatchDelivered}

func (s DispatchStatus) Valid() bool {
	for _, v := range DispatchStatuses {
		if s == v {
			return true
		}
	}
	return false
}
