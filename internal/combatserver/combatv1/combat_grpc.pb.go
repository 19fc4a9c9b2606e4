// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: combat.proto

package combatv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CombatService_StartCombat_FullMethodName          = "/combat.v1.CombatService/StartCombat"
	CombatService_GetCombatState_FullMethodName       = "/combat.v1.CombatService/GetCombatState"
	CombatService_EndCombat_FullMethodName            = "/combat.v1.CombatService/EndCombat"
	CombatService_AddParticipant_FullMethodName       = "/combat.v1.CombatService/AddParticipant"
	CombatService_RemoveParticipant_FullMethodName    = "/combat.v1.CombatService/RemoveParticipant"
	CombatService_RollDice_FullMethodName             = "/combat.v1.CombatService/RollDice"
	CombatService_RollInitiative_FullMethodName       = "/combat.v1.CombatService/RollInitiative"
	CombatService_ReorderInitiative_FullMethodName    = "/combat.v1.CombatService/ReorderInitiative"
	CombatService_GetTurnOrder_FullMethodName         = "/combat.v1.CombatService/GetTurnOrder"
	CombatService_GetCurrentTurn_FullMethodName       = "/combat.v1.CombatService/GetCurrentTurn"
	CombatService_AdvanceTurn_FullMethodName          = "/combat.v1.CombatService/AdvanceTurn"
	CombatService_ApplyDamage_FullMethodName          = "/combat.v1.CombatService/ApplyDamage"
	CombatService_HealDamage_FullMethodName           = "/combat.v1.CombatService/HealDamage"
	CombatService_SetTempHp_FullMethodName            = "/combat.v1.CombatService/SetTempHp"
	CombatService_RollDeathSave_FullMethodName        = "/combat.v1.CombatService/RollDeathSave"
	CombatService_GetParticipantStatus_FullMethodName = "/combat.v1.CombatService/GetParticipantStatus"
	CombatService_GetDamageLog_FullMethodName         = "/combat.v1.CombatService/GetDamageLog"
	CombatService_ApplyCondition_FullMethodName       = "/combat.v1.CombatService/ApplyCondition"
	CombatService_RemoveCondition_FullMethodName      = "/combat.v1.CombatService/RemoveCondition"
	CombatService_AttemptSave_FullMethodName          = "/combat.v1.CombatService/AttemptSave"
	CombatService_GetActiveConditions_FullMethodName  = "/combat.v1.CombatService/GetActiveConditions"
	CombatService_GetMechanicalEffects_FullMethodName = "/combat.v1.CombatService/GetMechanicalEffects"
	CombatService_ListConditionLibrary_FullMethodName = "/combat.v1.CombatService/ListConditionLibrary"
)

// CombatServiceClient is the client API for CombatService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CombatService exposes encounter lifecycle, initiative, hit-point
// tracking, and status conditions to game clients.
type CombatServiceClient interface {
	// Encounter lifecycle.
	StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*CombatState, error)
	GetCombatState(ctx context.Context, in *GetCombatStateRequest, opts ...grpc.CallOption) (*CombatState, error)
	EndCombat(ctx context.Context, in *EndCombatRequest, opts ...grpc.CallOption) (*Encounter, error)
	AddParticipant(ctx context.Context, in *AddParticipantRequest, opts ...grpc.CallOption) (*Participant, error)
	RemoveParticipant(ctx context.Context, in *RemoveParticipantRequest, opts ...grpc.CallOption) (*RemoveParticipantResponse, error)
	// Dice.
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*DiceRoll, error)
	// Initiative and turns.
	RollInitiative(ctx context.Context, in *RollInitiativeRequest, opts ...grpc.CallOption) (*InitiativeRoll, error)
	ReorderInitiative(ctx context.Context, in *ReorderInitiativeRequest, opts ...grpc.CallOption) (*ReorderInitiativeResponse, error)
	GetTurnOrder(ctx context.Context, in *GetTurnOrderRequest, opts ...grpc.CallOption) (*TurnOrder, error)
	GetCurrentTurn(ctx context.Context, in *GetCurrentTurnRequest, opts ...grpc.CallOption) (*Participant, error)
	AdvanceTurn(ctx context.Context, in *AdvanceTurnRequest, opts ...grpc.CallOption) (*TurnAdvance, error)
	// Hit points and death saves.
	ApplyDamage(ctx context.Context, in *ApplyDamageRequest, opts ...grpc.CallOption) (*DamageResult, error)
	HealDamage(ctx context.Context, in *HealDamageRequest, opts ...grpc.CallOption) (*HealingResult, error)
	SetTempHp(ctx context.Context, in *SetTempHpRequest, opts ...grpc.CallOption) (*ParticipantStatus, error)
	RollDeathSave(ctx context.Context, in *RollDeathSaveRequest, opts ...grpc.CallOption) (*DeathSaveResult, error)
	GetParticipantStatus(ctx context.Context, in *GetParticipantStatusRequest, opts ...grpc.CallOption) (*ParticipantStatus, error)
	GetDamageLog(ctx context.Context, in *GetDamageLogRequest, opts ...grpc.CallOption) (*DamageLog, error)
	// Conditions.
	ApplyCondition(ctx context.Context, in *ApplyConditionRequest, opts ...grpc.CallOption) (*ApplyConditionResponse, error)
	RemoveCondition(ctx context.Context, in *RemoveConditionRequest, opts ...grpc.CallOption) (*RemoveConditionResponse, error)
	AttemptSave(ctx context.Context, in *AttemptSaveRequest, opts ...grpc.CallOption) (*SaveResult, error)
	GetActiveConditions(ctx context.Context, in *GetActiveConditionsRequest, opts ...grpc.CallOption) (*ActiveConditions, error)
	GetMechanicalEffects(ctx context.Context, in *GetMechanicalEffectsRequest, opts ...grpc.CallOption) (*MechanicalEffects, error)
	ListConditionLibrary(ctx context.Context, in *ListConditionLibraryRequest, opts ...grpc.CallOption) (*ConditionLibrary, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc}
}

func (c *combatServiceClient) StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*CombatState, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CombatState)
	err := c.cc.Invoke(ctx, CombatService_StartCombat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetCombatState(ctx context.Context, in *GetCombatStateRequest, opts ...grpc.CallOption) (*CombatState, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CombatState)
	err := c.cc.Invoke(ctx, CombatService_GetCombatState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) EndCombat(ctx context.Context, in *EndCombatRequest, opts ...grpc.CallOption) (*Encounter, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Encounter)
	err := c.cc.Invoke(ctx, CombatService_EndCombat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) AddParticipant(ctx context.Context, in *AddParticipantRequest, opts ...grpc.CallOption) (*Participant, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Participant)
	err := c.cc.Invoke(ctx, CombatService_AddParticipant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RemoveParticipant(ctx context.Context, in *RemoveParticipantRequest, opts ...grpc.CallOption) (*RemoveParticipantResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveParticipantResponse)
	err := c.cc.Invoke(ctx, CombatService_RemoveParticipant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*DiceRoll, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiceRoll)
	err := c.cc.Invoke(ctx, CombatService_RollDice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RollInitiative(ctx context.Context, in *RollInitiativeRequest, opts ...grpc.CallOption) (*InitiativeRoll, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InitiativeRoll)
	err := c.cc.Invoke(ctx, CombatService_RollInitiative_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ReorderInitiative(ctx context.Context, in *ReorderInitiativeRequest, opts ...grpc.CallOption) (*ReorderInitiativeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReorderInitiativeResponse)
	err := c.cc.Invoke(ctx, CombatService_ReorderInitiative_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetTurnOrder(ctx context.Context, in *GetTurnOrderRequest, opts ...grpc.CallOption) (*TurnOrder, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TurnOrder)
	err := c.cc.Invoke(ctx, CombatService_GetTurnOrder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetCurrentTurn(ctx context.Context, in *GetCurrentTurnRequest, opts ...grpc.CallOption) (*Participant, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Participant)
	err := c.cc.Invoke(ctx, CombatService_GetCurrentTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) AdvanceTurn(ctx context.Context, in *AdvanceTurnRequest, opts ...grpc.CallOption) (*TurnAdvance, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TurnAdvance)
	err := c.cc.Invoke(ctx, CombatService_AdvanceTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ApplyDamage(ctx context.Context, in *ApplyDamageRequest, opts ...grpc.CallOption) (*DamageResult, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DamageResult)
	err := c.cc.Invoke(ctx, CombatService_ApplyDamage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) HealDamage(ctx context.Context, in *HealDamageRequest, opts ...grpc.CallOption) (*HealingResult, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealingResult)
	err := c.cc.Invoke(ctx, CombatService_HealDamage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) SetTempHp(ctx context.Context, in *SetTempHpRequest, opts ...grpc.CallOption) (*ParticipantStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParticipantStatus)
	err := c.cc.Invoke(ctx, CombatService_SetTempHp_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RollDeathSave(ctx context.Context, in *RollDeathSaveRequest, opts ...grpc.CallOption) (*DeathSaveResult, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeathSaveResult)
	err := c.cc.Invoke(ctx, CombatService_RollDeathSave_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetParticipantStatus(ctx context.Context, in *GetParticipantStatusRequest, opts ...grpc.CallOption) (*ParticipantStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParticipantStatus)
	err := c.cc.Invoke(ctx, CombatService_GetParticipantStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetDamageLog(ctx context.Context, in *GetDamageLogRequest, opts ...grpc.CallOption) (*DamageLog, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DamageLog)
	err := c.cc.Invoke(ctx, CombatService_GetDamageLog_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ApplyCondition(ctx context.Context, in *ApplyConditionRequest, opts ...grpc.CallOption) (*ApplyConditionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyConditionResponse)
	err := c.cc.Invoke(ctx, CombatService_ApplyCondition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RemoveCondition(ctx context.Context, in *RemoveConditionRequest, opts ...grpc.CallOption) (*RemoveConditionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveConditionResponse)
	err := c.cc.Invoke(ctx, CombatService_RemoveCondition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) AttemptSave(ctx context.Context, in *AttemptSaveRequest, opts ...grpc.CallOption) (*SaveResult, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveResult)
	err := c.cc.Invoke(ctx, CombatService_AttemptSave_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetActiveConditions(ctx context.Context, in *GetActiveConditionsRequest, opts ...grpc.CallOption) (*ActiveConditions, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ActiveConditions)
	err := c.cc.Invoke(ctx, CombatService_GetActiveConditions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetMechanicalEffects(ctx context.Context, in *GetMechanicalEffectsRequest, opts ...grpc.CallOption) (*MechanicalEffects, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MechanicalEffects)
	err := c.cc.Invoke(ctx, CombatService_GetMechanicalEffects_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListConditionLibrary(ctx context.Context, in *ListConditionLibraryRequest, opts ...grpc.CallOption) (*ConditionLibrary, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConditionLibrary)
	err := c.cc.Invoke(ctx, CombatService_ListConditionLibrary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CombatServiceServer is the server API for CombatService service.
// All implementations must embed UnimplementedCombatServiceServer
// for forward compatibility.
//
// CombatService exposes encounter lifecycle, initiative, hit-point
// tracking, and status conditions to game clients.
type CombatServiceServer interface {
	// Encounter lifecycle.
	StartCombat(context.Context, *StartCombatRequest) (*CombatState, error)
	GetCombatState(context.Context, *GetCombatStateRequest) (*CombatState, error)
	EndCombat(context.Context, *EndCombatRequest) (*Encounter, error)
	AddParticipant(context.Context, *AddParticipantRequest) (*Participant, error)
	RemoveParticipant(context.Context, *RemoveParticipantRequest) (*RemoveParticipantResponse, error)
	// Dice.
	RollDice(context.Context, *RollDiceRequest) (*DiceRoll, error)
	// Initiative and turns.
	RollInitiative(context.Context, *RollInitiativeRequest) (*InitiativeRoll, error)
	ReorderInitiative(context.Context, *ReorderInitiativeRequest) (*ReorderInitiativeResponse, error)
	GetTurnOrder(context.Context, *GetTurnOrderRequest) (*TurnOrder, error)
	GetCurrentTurn(context.Context, *GetCurrentTurnRequest) (*Participant, error)
	AdvanceTurn(context.Context, *AdvanceTurnRequest) (*TurnAdvance, error)
	// Hit points and death saves.
	ApplyDamage(context.Context, *ApplyDamageRequest) (*DamageResult, error)
	HealDamage(context.Context, *HealDamageRequest) (*HealingResult, error)
	SetTempHp(context.Context, *SetTempHpRequest) (*ParticipantStatus, error)
	RollDeathSave(context.Context, *RollDeathSaveRequest) (*DeathSaveResult, error)
	GetParticipantStatus(context.Context, *GetParticipantStatusRequest) (*ParticipantStatus, error)
	GetDamageLog(context.Context, *GetDamageLogRequest) (*DamageLog, error)
	// Conditions.
	ApplyCondition(context.Context, *ApplyConditionRequest) (*ApplyConditionResponse, error)
	RemoveCondition(context.Context, *RemoveConditionRequest) (*RemoveConditionResponse, error)
	AttemptSave(context.Context, *AttemptSaveRequest) (*SaveResult, error)
	GetActiveConditions(context.Context, *GetActiveConditionsRequest) (*ActiveConditions, error)
	GetMechanicalEffects(context.Context, *GetMechanicalEffectsRequest) (*MechanicalEffects, error)
	ListConditionLibrary(context.Context, *ListConditionLibraryRequest) (*ConditionLibrary, error)
	mustEmbedUnimplementedCombatServiceServer()
}

// UnimplementedCombatServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCombatServiceServer struct{}

func (UnimplementedCombatServiceServer) StartCombat(context.Context, *StartCombatRequest) (*CombatState, error) {
	return nil, status.Error(codes.Unimplemented, "method StartCombat not implemented")
}
func (UnimplementedCombatServiceServer) GetCombatState(context.Context, *GetCombatStateRequest) (*CombatState, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCombatState not implemented")
}
func (UnimplementedCombatServiceServer) EndCombat(context.Context, *EndCombatRequest) (*Encounter, error) {
	return nil, status.Error(codes.Unimplemented, "method EndCombat not implemented")
}
func (UnimplementedCombatServiceServer) AddParticipant(context.Context, *AddParticipantRequest) (*Participant, error) {
	return nil, status.Error(codes.Unimplemented, "method AddParticipant not implemented")
}
func (UnimplementedCombatServiceServer) RemoveParticipant(context.Context, *RemoveParticipantRequest) (*RemoveParticipantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveParticipant not implemented")
}
func (UnimplementedCombatServiceServer) RollDice(context.Context, *RollDiceRequest) (*DiceRoll, error) {
	return nil, status.Error(codes.Unimplemented, "method RollDice not implemented")
}
func (UnimplementedCombatServiceServer) RollInitiative(context.Context, *RollInitiativeRequest) (*InitiativeRoll, error) {
	return nil, status.Error(codes.Unimplemented, "method RollInitiative not implemented")
}
func (UnimplementedCombatServiceServer) ReorderInitiative(context.Context, *ReorderInitiativeRequest) (*ReorderInitiativeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReorderInitiative not implemented")
}
func (UnimplementedCombatServiceServer) GetTurnOrder(context.Context, *GetTurnOrderRequest) (*TurnOrder, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTurnOrder not implemented")
}
func (UnimplementedCombatServiceServer) GetCurrentTurn(context.Context, *GetCurrentTurnRequest) (*Participant, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentTurn not implemented")
}
func (UnimplementedCombatServiceServer) AdvanceTurn(context.Context, *AdvanceTurnRequest) (*TurnAdvance, error) {
	return nil, status.Error(codes.Unimplemented, "method AdvanceTurn not implemented")
}
func (UnimplementedCombatServiceServer) ApplyDamage(context.Context, *ApplyDamageRequest) (*DamageResult, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyDamage not implemented")
}
func (UnimplementedCombatServiceServer) HealDamage(context.Context, *HealDamageRequest) (*HealingResult, error) {
	return nil, status.Error(codes.Unimplemented, "method HealDamage not implemented")
}
func (UnimplementedCombatServiceServer) SetTempHp(context.Context, *SetTempHpRequest) (*ParticipantStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTempHp not implemented")
}
func (UnimplementedCombatServiceServer) RollDeathSave(context.Context, *RollDeathSaveRequest) (*DeathSaveResult, error) {
	return nil, status.Error(codes.Unimplemented, "method RollDeathSave not implemented")
}
func (UnimplementedCombatServiceServer) GetParticipantStatus(context.Context, *GetParticipantStatusRequest) (*ParticipantStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method GetParticipantStatus not implemented")
}
func (UnimplementedCombatServiceServer) GetDamageLog(context.Context, *GetDamageLogRequest) (*DamageLog, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDamageLog not implemented")
}
func (UnimplementedCombatServiceServer) ApplyCondition(context.Context, *ApplyConditionRequest) (*ApplyConditionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyCondition not implemented")
}
func (UnimplementedCombatServiceServer) RemoveCondition(context.Context, *RemoveConditionRequest) (*RemoveConditionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveCondition not implemented")
}
func (UnimplementedCombatServiceServer) AttemptSave(context.Context, *AttemptSaveRequest) (*SaveResult, error) {
	return nil, status.Error(codes.Unimplemented, "method AttemptSave not implemented")
}
func (UnimplementedCombatServiceServer) GetActiveConditions(context.Context, *GetActiveConditionsRequest) (*ActiveConditions, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveConditions not implemented")
}
func (UnimplementedCombatServiceServer) GetMechanicalEffects(context.Context, *GetMechanicalEffectsRequest) (*MechanicalEffects, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMechanicalEffects not implemented")
}
func (UnimplementedCombatServiceServer) ListConditionLibrary(context.Context, *ListConditionLibraryRequest) (*ConditionLibrary, error) {
	return nil, status.Error(codes.Unimplemented, "method ListConditionLibrary not implemented")
}
func (UnimplementedCombatServiceServer) mustEmbedUnimplementedCombatServiceServer() {}
func (UnimplementedCombatServiceServer) testEmbeddedByValue()                       {}

// UnsafeCombatServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CombatServiceServer will
// result in compilation errors.
type UnsafeCombatServiceServer interface {
	mustEmbedUnimplementedCombatServiceServer()
}

func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	// If the following call panics, it indicates UnimplementedCombatServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_StartCombat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartCombatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).StartCombat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_StartCombat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).StartCombat(ctx, req.(*StartCombatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetCombatState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCombatStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetCombatState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetCombatState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetCombatState(ctx, req.(*GetCombatStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_EndCombat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndCombatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).EndCombat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_EndCombat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).EndCombat(ctx, req.(*EndCombatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_AddParticipant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddParticipantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).AddParticipant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_AddParticipant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).AddParticipant(ctx, req.(*AddParticipantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RemoveParticipant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveParticipantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RemoveParticipant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RemoveParticipant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).RemoveParticipant(ctx, req.(*RemoveParticipantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RollDice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollDiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RollDice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RollDice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).RollDice(ctx, req.(*RollDiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RollInitiative_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollInitiativeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RollInitiative(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RollInitiative_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).RollInitiative(ctx, req.(*RollInitiativeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ReorderInitiative_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReorderInitiativeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ReorderInitiative(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ReorderInitiative_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ReorderInitiative(ctx, req.(*ReorderInitiativeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetTurnOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTurnOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetTurnOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetTurnOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetTurnOrder(ctx, req.(*GetTurnOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetCurrentTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetCurrentTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetCurrentTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetCurrentTurn(ctx, req.(*GetCurrentTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_AdvanceTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).AdvanceTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_AdvanceTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).AdvanceTurn(ctx, req.(*AdvanceTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ApplyDamage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyDamageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ApplyDamage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ApplyDamage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ApplyDamage(ctx, req.(*ApplyDamageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_HealDamage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealDamageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).HealDamage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_HealDamage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).HealDamage(ctx, req.(*HealDamageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_SetTempHp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTempHpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).SetTempHp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_SetTempHp_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).SetTempHp(ctx, req.(*SetTempHpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RollDeathSave_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollDeathSaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RollDeathSave(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RollDeathSave_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).RollDeathSave(ctx, req.(*RollDeathSaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetParticipantStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetParticipantStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetParticipantStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetParticipantStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetParticipantStatus(ctx, req.(*GetParticipantStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetDamageLog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDamageLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetDamageLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetDamageLog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetDamageLog(ctx, req.(*GetDamageLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ApplyCondition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyConditionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ApplyCondition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ApplyCondition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ApplyCondition(ctx, req.(*ApplyConditionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RemoveCondition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveConditionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RemoveCondition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RemoveCondition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).RemoveCondition(ctx, req.(*RemoveConditionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_AttemptSave_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttemptSaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).AttemptSave(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_AttemptSave_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).AttemptSave(ctx, req.(*AttemptSaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetActiveConditions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveConditionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetActiveConditions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetActiveConditions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetActiveConditions(ctx, req.(*GetActiveConditionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetMechanicalEffects_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMechanicalEffectsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetMechanicalEffects(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetMechanicalEffects_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetMechanicalEffects(ctx, req.(*GetMechanicalEffectsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListConditionLibrary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListConditionLibraryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListConditionLibrary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListConditionLibrary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ListConditionLibrary(ctx, req.(*ListConditionLibraryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "combat.v1.CombatService",
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartCombat",
			Handler:    _CombatService_StartCombat_Handler,
		},
		{
			MethodName: "GetCombatState",
			Handler:    _CombatService_GetCombatState_Handler,
		},
		{
			MethodName: "EndCombat",
			Handler:    _CombatService_EndCombat_Handler,
		},
		{
			MethodName: "AddParticipant",
			Handler:    _CombatService_AddParticipant_Handler,
		},
		{
			MethodName: "RemoveParticipant",
			Handler:    _CombatService_RemoveParticipant_Handler,
		},
		{
			MethodName: "RollDice",
			Handler:    _CombatService_RollDice_Handler,
		},
		{
			MethodName: "RollInitiative",
			Handler:    _CombatService_RollInitiative_Handler,
		},
		{
			MethodName: "ReorderInitiative",
			Handler:    _CombatService_ReorderInitiative_Handler,
		},
		{
			MethodName: "GetTurnOrder",
			Handler:    _CombatService_GetTurnOrder_Handler,
		},
		{
			MethodName: "GetCurrentTurn",
			Handler:    _CombatService_GetCurrentTurn_Handler,
		},
		{
			MethodName: "AdvanceTurn",
			Handler:    _CombatService_AdvanceTurn_Handler,
		},
		{
			MethodName: "ApplyDamage",
			Handler:    _CombatService_ApplyDamage_Handler,
		},
		{
			MethodName: "HealDamage",
			Handler:    _CombatService_HealDamage_Handler,
		},
		{
			MethodName: "SetTempHp",
			Handler:    _CombatService_SetTempHp_Handler,
		},
		{
			MethodName: "RollDeathSave",
			Handler:    _CombatService_RollDeathSave_Handler,
		},
		{
			MethodName: "GetParticipantStatus",
			Handler:    _CombatService_GetParticipantStatus_Handler,
		},
		{
			MethodName: "GetDamageLog",
			Handler:    _CombatService_GetDamageLog_Handler,
		},
		{
			MethodName: "ApplyCondition",
			Handler:    _CombatService_ApplyCondition_Handler,
		},
		{
			MethodName: "RemoveCondition",
			Handler:    _CombatService_RemoveCondition_Handler,
		},
		{
			MethodName: "AttemptSave",
			Handler:    _CombatService_AttemptSave_Handler,
		},
		{
			MethodName: "GetActiveConditions",
			Handler:    _CombatService_GetActiveConditions_Handler,
		},
		{
			MethodName: "GetMechanicalEffects",
			Handler:    _CombatService_GetMechanicalEffects_Handler,
		},
		{
			MethodName: "ListConditionLibrary",
			Handler:    _CombatService_ListConditionLibrary_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "combat.proto",
}
