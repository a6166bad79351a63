// Package engine runs a wired factory program as a synchronous dataflow
// machine.
//
// Execution proceeds in steps. Each step first delivers every pallet that was
// emitted during the previous step, then fires, in ascending station index,
// every station holding enough pallets. Pallets emitted while firing are
// delivered at the start of the next step. The run ends when a step emits
// nothing or an exit station fires.
package engine
