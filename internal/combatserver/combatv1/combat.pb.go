// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: combat.proto

package combatv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Encounter struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId        string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	CurrentRound     int32                  `protobuf:"varint,4,opt,name=current_round,json=currentRound,proto3" json:"current_round,omitempty"`
	CurrentTurnIndex int32                  `protobuf:"varint,5,opt,name=current_turn_index,json=currentTurnIndex,proto3" json:"current_turn_index,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Encounter) Reset() {
	*x = Encounter{}
	mi := &file_combat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Encounter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Encounter) ProtoMessage() {}

func (x *Encounter) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Encounter.ProtoReflect.Descriptor instead.
func (*Encounter) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{0}
}

func (x *Encounter) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Encounter) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Encounter) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Encounter) GetCurrentRound() int32 {
	if x != nil {
		return x.CurrentRound
	}
	return 0
}

func (x *Encounter) GetCurrentTurnIndex() int32 {
	if x != nil {
		return x.CurrentTurnIndex
	}
	return 0
}

type ParticipantInput struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Name               string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CharacterId        string                 `protobuf:"bytes,2,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	NpcRef             string                 `protobuf:"bytes,3,opt,name=npc_ref,json=npcRef,proto3" json:"npc_ref,omitempty"`
	MaxHp              int32                  `protobuf:"varint,4,opt,name=max_hp,json=maxHp,proto3" json:"max_hp,omitempty"`
	CurrentHp          *int32                 `protobuf:"varint,5,opt,name=current_hp,json=currentHp,proto3,oneof" json:"current_hp,omitempty"`
	InitiativeModifier int32                  `protobuf:"varint,6,opt,name=initiative_modifier,json=initiativeModifier,proto3" json:"initiative_modifier,omitempty"`
	Initiative         *int32                 `protobuf:"varint,7,opt,name=initiative,proto3,oneof" json:"initiative,omitempty"`
	Resistances        []string               `protobuf:"bytes,8,rep,name=resistances,proto3" json:"resistances,omitempty"`
	Vulnerabilities    []string               `protobuf:"bytes,9,rep,name=vulnerabilities,proto3" json:"vulnerabilities,omitempty"`
	Immunities         []string               `protobuf:"bytes,10,rep,name=immunities,proto3" json:"immunities,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ParticipantInput) Reset() {
	*x = ParticipantInput{}
	mi := &file_combat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParticipantInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParticipantInput) ProtoMessage() {}

func (x *ParticipantInput) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParticipantInput.ProtoReflect.Descriptor instead.
func (*ParticipantInput) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{1}
}

func (x *ParticipantInput) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ParticipantInput) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *ParticipantInput) GetNpcRef() string {
	if x != nil {
		return x.NpcRef
	}
	return ""
}

func (x *ParticipantInput) GetMaxHp() int32 {
	if x != nil {
		return x.MaxHp
	}
	return 0
}

func (x *ParticipantInput) GetCurrentHp() int32 {
	if x != nil && x.CurrentHp != nil {
		return *x.CurrentHp
	}
	return 0
}

func (x *ParticipantInput) GetInitiativeModifier() int32 {
	if x != nil {
		return x.InitiativeModifier
	}
	return 0
}

func (x *ParticipantInput) GetInitiative() int32 {
	if x != nil && x.Initiative != nil {
		return *x.Initiative
	}
	return 0
}

func (x *ParticipantInput) GetResistances() []string {
	if x != nil {
		return x.Resistances
	}
	return nil
}

func (x *ParticipantInput) GetVulnerabilities() []string {
	if x != nil {
		return x.Vulnerabilities
	}
	return nil
}

func (x *ParticipantInput) GetImmunities() []string {
	if x != nil {
		return x.Immunities
	}
	return nil
}

type Participant struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EncounterId        string                 `protobuf:"bytes,2,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	CharacterId        string                 `protobuf:"bytes,3,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	NpcRef             string                 `protobuf:"bytes,4,opt,name=npc_ref,json=npcRef,proto3" json:"npc_ref,omitempty"`
	Name               string                 `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	InitiativeTotal    int32                  `protobuf:"varint,6,opt,name=initiative_total,json=initiativeTotal,proto3" json:"initiative_total,omitempty"`
	InitiativeModifier int32                  `protobuf:"varint,7,opt,name=initiative_modifier,json=initiativeModifier,proto3" json:"initiative_modifier,omitempty"`
	TurnOrder          int32                  `protobuf:"varint,8,opt,name=turn_order,json=turnOrder,proto3" json:"turn_order,omitempty"`
	IsActive           bool                   `protobuf:"varint,9,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	Resistances        []string               `protobuf:"bytes,10,rep,name=resistances,proto3" json:"resistances,omitempty"`
	Vulnerabilities    []string               `protobuf:"bytes,11,rep,name=vulnerabilities,proto3" json:"vulnerabilities,omitempty"`
	Immunities         []string               `protobuf:"bytes,12,rep,name=immunities,proto3" json:"immunities,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Participant) Reset() {
	*x = Participant{}
	mi := &file_combat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Participant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Participant) ProtoMessage() {}

func (x *Participant) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Participant.ProtoReflect.Descriptor instead.
func (*Participant) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{2}
}

func (x *Participant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Participant) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

func (x *Participant) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *Participant) GetNpcRef() string {
	if x != nil {
		return x.NpcRef
	}
	return ""
}

func (x *Participant) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Participant) GetInitiativeTotal() int32 {
	if x != nil {
		return x.InitiativeTotal
	}
	return 0
}

func (x *Participant) GetInitiativeModifier() int32 {
	if x != nil {
		return x.InitiativeModifier
	}
	return 0
}

func (x *Participant) GetTurnOrder() int32 {
	if x != nil {
		return x.TurnOrder
	}
	return 0
}

func (x *Participant) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Participant) GetResistances() []string {
	if x != nil {
		return x.Resistances
	}
	return nil
}

func (x *Participant) GetVulnerabilities() []string {
	if x != nil {
		return x.Vulnerabilities
	}
	return nil
}

func (x *Participant) GetImmunities() []string {
	if x != nil {
		return x.Immunities
	}
	return nil
}

type ParticipantStatus struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId      string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	MaxHp              int32                  `protobuf:"varint,2,opt,name=max_hp,json=maxHp,proto3" json:"max_hp,omitempty"`
	CurrentHp          int32                  `protobuf:"varint,3,opt,name=current_hp,json=currentHp,proto3" json:"current_hp,omitempty"`
	TempHp             int32                  `protobuf:"varint,4,opt,name=temp_hp,json=tempHp,proto3" json:"temp_hp,omitempty"`
	DeathSaveSuccesses int32                  `protobuf:"varint,5,opt,name=death_save_successes,json=deathSaveSuccesses,proto3" json:"death_save_successes,omitempty"`
	DeathSaveFailures  int32                  `protobuf:"varint,6,opt,name=death_save_failures,json=deathSaveFailures,proto3" json:"death_save_failures,omitempty"`
	IsConscious        bool                   `protobuf:"varint,7,opt,name=is_conscious,json=isConscious,proto3" json:"is_conscious,omitempty"`
	LifeState          string                 `protobuf:"bytes,8,opt,name=life_state,json=lifeState,proto3" json:"life_state,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ParticipantStatus) Reset() {
	*x = ParticipantStatus{}
	mi := &file_combat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParticipantStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParticipantStatus) ProtoMessage() {}

func (x *ParticipantStatus) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParticipantStatus.ProtoReflect.Descriptor instead.
func (*ParticipantStatus) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{3}
}

func (x *ParticipantStatus) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *ParticipantStatus) GetMaxHp() int32 {
	if x != nil {
		return x.MaxHp
	}
	return 0
}

func (x *ParticipantStatus) GetCurrentHp() int32 {
	if x != nil {
		return x.CurrentHp
	}
	return 0
}

func (x *ParticipantStatus) GetTempHp() int32 {
	if x != nil {
		return x.TempHp
	}
	return 0
}

func (x *ParticipantStatus) GetDeathSaveSuccesses() int32 {
	if x != nil {
		return x.DeathSaveSuccesses
	}
	return 0
}

func (x *ParticipantStatus) GetDeathSaveFailures() int32 {
	if x != nil {
		return x.DeathSaveFailures
	}
	return 0
}

func (x *ParticipantStatus) GetIsConscious() bool {
	if x != nil {
		return x.IsConscious
	}
	return false
}

func (x *ParticipantStatus) GetLifeState() string {
	if x != nil {
		return x.LifeState
	}
	return ""
}

type StartCombatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Participants  []*ParticipantInput    `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	SurpriseRound bool                   `protobuf:"varint,3,opt,name=surprise_round,json=surpriseRound,proto3" json:"surprise_round,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartCombatRequest) Reset() {
	*x = StartCombatRequest{}
	mi := &file_combat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartCombatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartCombatRequest) ProtoMessage() {}

func (x *StartCombatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartCombatRequest.ProtoReflect.Descriptor instead.
func (*StartCombatRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{4}
}

func (x *StartCombatRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *StartCombatRequest) GetParticipants() []*ParticipantInput {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *StartCombatRequest) GetSurpriseRound() bool {
	if x != nil {
		return x.SurpriseRound
	}
	return false
}

type CombatState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Encounter     *Encounter             `protobuf:"bytes,1,opt,name=encounter,proto3" json:"encounter,omitempty"`
	Participants  []*Participant         `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	Statuses      []*ParticipantStatus   `protobuf:"bytes,3,rep,name=statuses,proto3" json:"statuses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CombatState) Reset() {
	*x = CombatState{}
	mi := &file_combat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CombatState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CombatState) ProtoMessage() {}

func (x *CombatState) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CombatState.ProtoReflect.Descriptor instead.
func (*CombatState) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{5}
}

func (x *CombatState) GetEncounter() *Encounter {
	if x != nil {
		return x.Encounter
	}
	return nil
}

func (x *CombatState) GetParticipants() []*Participant {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *CombatState) GetStatuses() []*ParticipantStatus {
	if x != nil {
		return x.Statuses
	}
	return nil
}

type GetCombatStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCombatStateRequest) Reset() {
	*x = GetCombatStateRequest{}
	mi := &file_combat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCombatStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCombatStateRequest) ProtoMessage() {}

func (x *GetCombatStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCombatStateRequest.ProtoReflect.Descriptor instead.
func (*GetCombatStateRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{6}
}

func (x *GetCombatStateRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type EndCombatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndCombatRequest) Reset() {
	*x = EndCombatRequest{}
	mi := &file_combat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndCombatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndCombatRequest) ProtoMessage() {}

func (x *EndCombatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndCombatRequest.ProtoReflect.Descriptor instead.
func (*EndCombatRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{7}
}

func (x *EndCombatRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type AddParticipantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	Participant   *ParticipantInput      `protobuf:"bytes,2,opt,name=participant,proto3" json:"participant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddParticipantRequest) Reset() {
	*x = AddParticipantRequest{}
	mi := &file_combat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddParticipantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddParticipantRequest) ProtoMessage() {}

func (x *AddParticipantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddParticipantRequest.ProtoReflect.Descriptor instead.
func (*AddParticipantRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{8}
}

func (x *AddParticipantRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

func (x *AddParticipantRequest) GetParticipant() *ParticipantInput {
	if x != nil {
		return x.Participant
	}
	return nil
}

type RemoveParticipantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveParticipantRequest) Reset() {
	*x = RemoveParticipantRequest{}
	mi := &file_combat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveParticipantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveParticipantRequest) ProtoMessage() {}

func (x *RemoveParticipantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveParticipantRequest.ProtoReflect.Descriptor instead.
func (*RemoveParticipantRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{9}
}

func (x *RemoveParticipantRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

type RemoveParticipantResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveParticipantResponse) Reset() {
	*x = RemoveParticipantResponse{}
	mi := &file_combat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveParticipantResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveParticipantResponse) ProtoMessage() {}

func (x *RemoveParticipantResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveParticipantResponse.ProtoReflect.Descriptor instead.
func (*RemoveParticipantResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{10}
}

type RollDiceRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// expression is a dice expression such as "2d6+3" or "2d20kh1".
	Expression    string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RollDiceRequest) Reset() {
	*x = RollDiceRequest{}
	mi := &file_combat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RollDiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RollDiceRequest) ProtoMessage() {}

func (x *RollDiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RollDiceRequest.ProtoReflect.Descriptor instead.
func (*RollDiceRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{11}
}

func (x *RollDiceRequest) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

type DiceRoll struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expression    string                 `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	Dice          []int32                `protobuf:"varint,2,rep,packed,name=dice,proto3" json:"dice,omitempty"`
	Modifier      int32                  `protobuf:"varint,3,opt,name=modifier,proto3" json:"modifier,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiceRoll) Reset() {
	*x = DiceRoll{}
	mi := &file_combat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiceRoll) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiceRoll) ProtoMessage() {}

func (x *DiceRoll) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiceRoll.ProtoReflect.Descriptor instead.
func (*DiceRoll) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{12}
}

func (x *DiceRoll) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *DiceRoll) GetDice() []int32 {
	if x != nil {
		return x.Dice
	}
	return nil
}

func (x *DiceRoll) GetModifier() int32 {
	if x != nil {
		return x.Modifier
	}
	return 0
}

func (x *DiceRoll) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type RollInitiativeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	ParticipantId string                 `protobuf:"bytes,2,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Roll          *int32                 `protobuf:"varint,3,opt,name=roll,proto3,oneof" json:"roll,omitempty"`
	Modifier      *int32                 `protobuf:"varint,4,opt,name=modifier,proto3,oneof" json:"modifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RollInitiativeRequest) Reset() {
	*x = RollInitiativeRequest{}
	mi := &file_combat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RollInitiativeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RollInitiativeRequest) ProtoMessage() {}

func (x *RollInitiativeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RollInitiativeRequest.ProtoReflect.Descriptor instead.
func (*RollInitiativeRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{13}
}

func (x *RollInitiativeRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

func (x *RollInitiativeRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *RollInitiativeRequest) GetRoll() int32 {
	if x != nil && x.Roll != nil {
		return *x.Roll
	}
	return 0
}

func (x *RollInitiativeRequest) GetModifier() int32 {
	if x != nil && x.Modifier != nil {
		return *x.Modifier
	}
	return 0
}

type InitiativeRoll struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Roll          int32                  `protobuf:"varint,2,opt,name=roll,proto3" json:"roll,omitempty"`
	Modifier      int32                  `protobuf:"varint,3,opt,name=modifier,proto3" json:"modifier,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitiativeRoll) Reset() {
	*x = InitiativeRoll{}
	mi := &file_combat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitiativeRoll) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitiativeRoll) ProtoMessage() {}

func (x *InitiativeRoll) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitiativeRoll.ProtoReflect.Descriptor instead.
func (*InitiativeRoll) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{14}
}

func (x *InitiativeRoll) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *InitiativeRoll) GetRoll() int32 {
	if x != nil {
		return x.Roll
	}
	return 0
}

func (x *InitiativeRoll) GetModifier() int32 {
	if x != nil {
		return x.Modifier
	}
	return 0
}

func (x *InitiativeRoll) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ReorderInitiativeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	ParticipantId string                 `protobuf:"bytes,2,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	NewTotal      int32                  `protobuf:"varint,3,opt,name=new_total,json=newTotal,proto3" json:"new_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderInitiativeRequest) Reset() {
	*x = ReorderInitiativeRequest{}
	mi := &file_combat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderInitiativeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderInitiativeRequest) ProtoMessage() {}

func (x *ReorderInitiativeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderInitiativeRequest.ProtoReflect.Descriptor instead.
func (*ReorderInitiativeRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{15}
}

func (x *ReorderInitiativeRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

func (x *ReorderInitiativeRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *ReorderInitiativeRequest) GetNewTotal() int32 {
	if x != nil {
		return x.NewTotal
	}
	return 0
}

type ReorderInitiativeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderInitiativeResponse) Reset() {
	*x = ReorderInitiativeResponse{}
	mi := &file_combat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderInitiativeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderInitiativeResponse) ProtoMessage() {}

func (x *ReorderInitiativeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderInitiativeResponse.ProtoReflect.Descriptor instead.
func (*ReorderInitiativeResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{16}
}

type GetTurnOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTurnOrderRequest) Reset() {
	*x = GetTurnOrderRequest{}
	mi := &file_combat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTurnOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTurnOrderRequest) ProtoMessage() {}

func (x *GetTurnOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTurnOrderRequest.ProtoReflect.Descriptor instead.
func (*GetTurnOrderRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{17}
}

func (x *GetTurnOrderRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type TurnOrder struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Participants  []*Participant         `protobuf:"bytes,1,rep,name=participants,proto3" json:"participants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TurnOrder) Reset() {
	*x = TurnOrder{}
	mi := &file_combat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnOrder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnOrder) ProtoMessage() {}

func (x *TurnOrder) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnOrder.ProtoReflect.Descriptor instead.
func (*TurnOrder) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{18}
}

func (x *TurnOrder) GetParticipants() []*Participant {
	if x != nil {
		return x.Participants
	}
	return nil
}

type GetCurrentTurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentTurnRequest) Reset() {
	*x = GetCurrentTurnRequest{}
	mi := &file_combat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentTurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentTurnRequest) ProtoMessage() {}

func (x *GetCurrentTurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentTurnRequest.ProtoReflect.Descriptor instead.
func (*GetCurrentTurnRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{19}
}

func (x *GetCurrentTurnRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type AdvanceTurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdvanceTurnRequest) Reset() {
	*x = AdvanceTurnRequest{}
	mi := &file_combat_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceTurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceTurnRequest) ProtoMessage() {}

func (x *AdvanceTurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceTurnRequest.ProtoReflect.Descriptor instead.
func (*AdvanceTurnRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{20}
}

func (x *AdvanceTurnRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type TurnAdvance struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	PreviousParticipant *Participant           `protobuf:"bytes,1,opt,name=previous_participant,json=previousParticipant,proto3" json:"previous_participant,omitempty"`
	CurrentParticipant  *Participant           `protobuf:"bytes,2,opt,name=current_participant,json=currentParticipant,proto3" json:"current_participant,omitempty"`
	NewRound            bool                   `protobuf:"varint,3,opt,name=new_round,json=newRound,proto3" json:"new_round,omitempty"`
	RoundNumber         int32                  `protobuf:"varint,4,opt,name=round_number,json=roundNumber,proto3" json:"round_number,omitempty"`
	ExpiredConditions   []*ConditionInstance   `protobuf:"bytes,5,rep,name=expired_conditions,json=expiredConditions,proto3" json:"expired_conditions,omitempty"`
	SavingThrowsNeeded  []*PendingSave         `protobuf:"bytes,6,rep,name=saving_throws_needed,json=savingThrowsNeeded,proto3" json:"saving_throws_needed,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *TurnAdvance) Reset() {
	*x = TurnAdvance{}
	mi := &file_combat_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnAdvance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnAdvance) ProtoMessage() {}

func (x *TurnAdvance) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnAdvance.ProtoReflect.Descriptor instead.
func (*TurnAdvance) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{21}
}

func (x *TurnAdvance) GetPreviousParticipant() *Participant {
	if x != nil {
		return x.PreviousParticipant
	}
	return nil
}

func (x *TurnAdvance) GetCurrentParticipant() *Participant {
	if x != nil {
		return x.CurrentParticipant
	}
	return nil
}

func (x *TurnAdvance) GetNewRound() bool {
	if x != nil {
		return x.NewRound
	}
	return false
}

func (x *TurnAdvance) GetRoundNumber() int32 {
	if x != nil {
		return x.RoundNumber
	}
	return 0
}

func (x *TurnAdvance) GetExpiredConditions() []*ConditionInstance {
	if x != nil {
		return x.ExpiredConditions
	}
	return nil
}

func (x *TurnAdvance) GetSavingThrowsNeeded() []*PendingSave {
	if x != nil {
		return x.SavingThrowsNeeded
	}
	return nil
}

type ApplyDamageRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId       string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Amount              int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	DamageType          string                 `protobuf:"bytes,3,opt,name=damage_type,json=damageType,proto3" json:"damage_type,omitempty"`
	IgnoreResistances   bool                   `protobuf:"varint,4,opt,name=ignore_resistances,json=ignoreResistances,proto3" json:"ignore_resistances,omitempty"`
	IgnoreImmunities    bool                   `protobuf:"varint,5,opt,name=ignore_immunities,json=ignoreImmunities,proto3" json:"ignore_immunities,omitempty"`
	SourceParticipantId string                 `protobuf:"bytes,6,opt,name=source_participant_id,json=sourceParticipantId,proto3" json:"source_participant_id,omitempty"`
	SourceDescription   string                 `protobuf:"bytes,7,opt,name=source_description,json=sourceDescription,proto3" json:"source_description,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ApplyDamageRequest) Reset() {
	*x = ApplyDamageRequest{}
	mi := &file_combat_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyDamageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyDamageRequest) ProtoMessage() {}

func (x *ApplyDamageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyDamageRequest.ProtoReflect.Descriptor instead.
func (*ApplyDamageRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{22}
}

func (x *ApplyDamageRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *ApplyDamageRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ApplyDamageRequest) GetDamageType() string {
	if x != nil {
		return x.DamageType
	}
	return ""
}

func (x *ApplyDamageRequest) GetIgnoreResistances() bool {
	if x != nil {
		return x.IgnoreResistances
	}
	return false
}

func (x *ApplyDamageRequest) GetIgnoreImmunities() bool {
	if x != nil {
		return x.IgnoreImmunities
	}
	return false
}

func (x *ApplyDamageRequest) GetSourceParticipantId() string {
	if x != nil {
		return x.SourceParticipantId
	}
	return ""
}

func (x *ApplyDamageRequest) GetSourceDescription() string {
	if x != nil {
		return x.SourceDescription
	}
	return ""
}

type DamageResult struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId          string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	DamageRequested        int32                  `protobuf:"varint,2,opt,name=damage_requested,json=damageRequested,proto3" json:"damage_requested,omitempty"`
	DamageApplied          int32                  `protobuf:"varint,3,opt,name=damage_applied,json=damageApplied,proto3" json:"damage_applied,omitempty"`
	TempHpAbsorbed         int32                  `protobuf:"varint,4,opt,name=temp_hp_absorbed,json=tempHpAbsorbed,proto3" json:"temp_hp_absorbed,omitempty"`
	HpLost                 int32                  `protobuf:"varint,5,opt,name=hp_lost,json=hpLost,proto3" json:"hp_lost,omitempty"`
	CurrentHp              int32                  `protobuf:"varint,6,opt,name=current_hp,json=currentHp,proto3" json:"current_hp,omitempty"`
	TempHp                 int32                  `protobuf:"varint,7,opt,name=temp_hp,json=tempHp,proto3" json:"temp_hp,omitempty"`
	IsConscious            bool                   `protobuf:"varint,8,opt,name=is_conscious,json=isConscious,proto3" json:"is_conscious,omitempty"`
	MassiveDamage          bool                   `protobuf:"varint,9,opt,name=massive_damage,json=massiveDamage,proto3" json:"massive_damage,omitempty"`
	LifeState              string                 `protobuf:"bytes,10,opt,name=life_state,json=lifeState,proto3" json:"life_state,omitempty"`
	EffectiveResistance    bool                   `protobuf:"varint,11,opt,name=effective_resistance,json=effectiveResistance,proto3" json:"effective_resistance,omitempty"`
	EffectiveVulnerability bool                   `protobuf:"varint,12,opt,name=effective_vulnerability,json=effectiveVulnerability,proto3" json:"effective_vulnerability,omitempty"`
	EffectiveImmunity      bool                   `protobuf:"varint,13,opt,name=effective_immunity,json=effectiveImmunity,proto3" json:"effective_immunity,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *DamageResult) Reset() {
	*x = DamageResult{}
	mi := &file_combat_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DamageResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DamageResult) ProtoMessage() {}

func (x *DamageResult) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DamageResult.ProtoReflect.Descriptor instead.
func (*DamageResult) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{23}
}

func (x *DamageResult) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *DamageResult) GetDamageRequested() int32 {
	if x != nil {
		return x.DamageRequested
	}
	return 0
}

func (x *DamageResult) GetDamageApplied() int32 {
	if x != nil {
		return x.DamageApplied
	}
	return 0
}

func (x *DamageResult) GetTempHpAbsorbed() int32 {
	if x != nil {
		return x.TempHpAbsorbed
	}
	return 0
}

func (x *DamageResult) GetHpLost() int32 {
	if x != nil {
		return x.HpLost
	}
	return 0
}

func (x *DamageResult) GetCurrentHp() int32 {
	if x != nil {
		return x.CurrentHp
	}
	return 0
}

func (x *DamageResult) GetTempHp() int32 {
	if x != nil {
		return x.TempHp
	}
	return 0
}

func (x *DamageResult) GetIsConscious() bool {
	if x != nil {
		return x.IsConscious
	}
	return false
}

func (x *DamageResult) GetMassiveDamage() bool {
	if x != nil {
		return x.MassiveDamage
	}
	return false
}

func (x *DamageResult) GetLifeState() string {
	if x != nil {
		return x.LifeState
	}
	return ""
}

func (x *DamageResult) GetEffectiveResistance() bool {
	if x != nil {
		return x.EffectiveResistance
	}
	return false
}

func (x *DamageResult) GetEffectiveVulnerability() bool {
	if x != nil {
		return x.EffectiveVulnerability
	}
	return false
}

func (x *DamageResult) GetEffectiveImmunity() bool {
	if x != nil {
		return x.EffectiveImmunity
	}
	return false
}

type HealDamageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Amount        int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealDamageRequest) Reset() {
	*x = HealDamageRequest{}
	mi := &file_combat_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealDamageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealDamageRequest) ProtoMessage() {}

func (x *HealDamageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealDamageRequest.ProtoReflect.Descriptor instead.
func (*HealDamageRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{24}
}

func (x *HealDamageRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *HealDamageRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *HealDamageRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type HealingResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId   string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	AmountRequested int32                  `protobuf:"varint,2,opt,name=amount_requested,json=amountRequested,proto3" json:"amount_requested,omitempty"`
	AmountHealed    int32                  `protobuf:"varint,3,opt,name=amount_healed,json=amountHealed,proto3" json:"amount_healed,omitempty"`
	Overheal        int32                  `protobuf:"varint,4,opt,name=overheal,proto3" json:"overheal,omitempty"`
	CurrentHp       int32                  `protobuf:"varint,5,opt,name=current_hp,json=currentHp,proto3" json:"current_hp,omitempty"`
	Revived         bool                   `protobuf:"varint,6,opt,name=revived,proto3" json:"revived,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *HealingResult) Reset() {
	*x = HealingResult{}
	mi := &file_combat_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealingResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealingResult) ProtoMessage() {}

func (x *HealingResult) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealingResult.ProtoReflect.Descriptor instead.
func (*HealingResult) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{25}
}

func (x *HealingResult) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *HealingResult) GetAmountRequested() int32 {
	if x != nil {
		return x.AmountRequested
	}
	return 0
}

func (x *HealingResult) GetAmountHealed() int32 {
	if x != nil {
		return x.AmountHealed
	}
	return 0
}

func (x *HealingResult) GetOverheal() int32 {
	if x != nil {
		return x.Overheal
	}
	return 0
}

func (x *HealingResult) GetCurrentHp() int32 {
	if x != nil {
		return x.CurrentHp
	}
	return 0
}

func (x *HealingResult) GetRevived() bool {
	if x != nil {
		return x.Revived
	}
	return false
}

type SetTempHpRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Amount        int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTempHpRequest) Reset() {
	*x = SetTempHpRequest{}
	mi := &file_combat_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTempHpRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTempHpRequest) ProtoMessage() {}

func (x *SetTempHpRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTempHpRequest.ProtoReflect.Descriptor instead.
func (*SetTempHpRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{26}
}

func (x *SetTempHpRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *SetTempHpRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type RollDeathSaveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Roll          int32                  `protobuf:"varint,2,opt,name=roll,proto3" json:"roll,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RollDeathSaveRequest) Reset() {
	*x = RollDeathSaveRequest{}
	mi := &file_combat_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RollDeathSaveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RollDeathSaveRequest) ProtoMessage() {}

func (x *RollDeathSaveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RollDeathSaveRequest.ProtoReflect.Descriptor instead.
func (*RollDeathSaveRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{27}
}

func (x *RollDeathSaveRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *RollDeathSaveRequest) GetRoll() int32 {
	if x != nil {
		return x.Roll
	}
	return 0
}

type DeathSaveResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Roll          int32                  `protobuf:"varint,2,opt,name=roll,proto3" json:"roll,omitempty"`
	Outcome       string                 `protobuf:"bytes,3,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Successes     int32                  `protobuf:"varint,4,opt,name=successes,proto3" json:"successes,omitempty"`
	Failures      int32                  `protobuf:"varint,5,opt,name=failures,proto3" json:"failures,omitempty"`
	LifeState     string                 `protobuf:"bytes,6,opt,name=life_state,json=lifeState,proto3" json:"life_state,omitempty"`
	Revived       bool                   `protobuf:"varint,7,opt,name=revived,proto3" json:"revived,omitempty"`
	CurrentHp     int32                  `protobuf:"varint,8,opt,name=current_hp,json=currentHp,proto3" json:"current_hp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeathSaveResult) Reset() {
	*x = DeathSaveResult{}
	mi := &file_combat_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeathSaveResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeathSaveResult) ProtoMessage() {}

func (x *DeathSaveResult) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeathSaveResult.ProtoReflect.Descriptor instead.
func (*DeathSaveResult) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{28}
}

func (x *DeathSaveResult) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *DeathSaveResult) GetRoll() int32 {
	if x != nil {
		return x.Roll
	}
	return 0
}

func (x *DeathSaveResult) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *DeathSaveResult) GetSuccesses() int32 {
	if x != nil {
		return x.Successes
	}
	return 0
}

func (x *DeathSaveResult) GetFailures() int32 {
	if x != nil {
		return x.Failures
	}
	return 0
}

func (x *DeathSaveResult) GetLifeState() string {
	if x != nil {
		return x.LifeState
	}
	return ""
}

func (x *DeathSaveResult) GetRevived() bool {
	if x != nil {
		return x.Revived
	}
	return false
}

func (x *DeathSaveResult) GetCurrentHp() int32 {
	if x != nil {
		return x.CurrentHp
	}
	return 0
}

type GetParticipantStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParticipantStatusRequest) Reset() {
	*x = GetParticipantStatusRequest{}
	mi := &file_combat_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParticipantStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParticipantStatusRequest) ProtoMessage() {}

func (x *GetParticipantStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParticipantStatusRequest.ProtoReflect.Descriptor instead.
func (*GetParticipantStatusRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{29}
}

func (x *GetParticipantStatusRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

type GetDamageLogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EncounterId   string                 `protobuf:"bytes,1,opt,name=encounter_id,json=encounterId,proto3" json:"encounter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDamageLogRequest) Reset() {
	*x = GetDamageLogRequest{}
	mi := &file_combat_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDamageLogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDamageLogRequest) ProtoMessage() {}

func (x *GetDamageLogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDamageLogRequest.ProtoReflect.Descriptor instead.
func (*GetDamageLogRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{30}
}

func (x *GetDamageLogRequest) GetEncounterId() string {
	if x != nil {
		return x.EncounterId
	}
	return ""
}

type DamageLogEntry struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ParticipantId       string                 `protobuf:"bytes,2,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	Amount              int32                  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	DamageType          string                 `protobuf:"bytes,4,opt,name=damage_type,json=damageType,proto3" json:"damage_type,omitempty"`
	SourceParticipantId string                 `protobuf:"bytes,5,opt,name=source_participant_id,json=sourceParticipantId,proto3" json:"source_participant_id,omitempty"`
	SourceDescription   string                 `protobuf:"bytes,6,opt,name=source_description,json=sourceDescription,proto3" json:"source_description,omitempty"`
	Round               int32                  `protobuf:"varint,7,opt,name=round,proto3" json:"round,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *DamageLogEntry) Reset() {
	*x = DamageLogEntry{}
	mi := &file_combat_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DamageLogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DamageLogEntry) ProtoMessage() {}

func (x *DamageLogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DamageLogEntry.ProtoReflect.Descriptor instead.
func (*DamageLogEntry) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{31}
}

func (x *DamageLogEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DamageLogEntry) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *DamageLogEntry) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *DamageLogEntry) GetDamageType() string {
	if x != nil {
		return x.DamageType
	}
	return ""
}

func (x *DamageLogEntry) GetSourceParticipantId() string {
	if x != nil {
		return x.SourceParticipantId
	}
	return ""
}

func (x *DamageLogEntry) GetSourceDescription() string {
	if x != nil {
		return x.SourceDescription
	}
	return ""
}

func (x *DamageLogEntry) GetRound() int32 {
	if x != nil {
		return x.Round
	}
	return 0
}

type DamageLog struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*DamageLogEntry      `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DamageLog) Reset() {
	*x = DamageLog{}
	mi := &file_combat_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DamageLog) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DamageLog) ProtoMessage() {}

func (x *DamageLog) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DamageLog.ProtoReflect.Descriptor instead.
func (*DamageLog) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{32}
}

func (x *DamageLog) GetEntries() []*DamageLogEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ApplyConditionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	ConditionName string                 `protobuf:"bytes,2,opt,name=condition_name,json=conditionName,proto3" json:"condition_name,omitempty"`
	DurationKind  string                 `protobuf:"bytes,3,opt,name=duration_kind,json=durationKind,proto3" json:"duration_kind,omitempty"`
	DurationValue int32                  `protobuf:"varint,4,opt,name=duration_value,json=durationValue,proto3" json:"duration_value,omitempty"`
	SaveDc        int32                  `protobuf:"varint,5,opt,name=save_dc,json=saveDc,proto3" json:"save_dc,omitempty"`
	SaveAbility   string                 `protobuf:"bytes,6,opt,name=save_ability,json=saveAbility,proto3" json:"save_ability,omitempty"`
	Source        string                 `protobuf:"bytes,7,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyConditionRequest) Reset() {
	*x = ApplyConditionRequest{}
	mi := &file_combat_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyConditionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyConditionRequest) ProtoMessage() {}

func (x *ApplyConditionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyConditionRequest.ProtoReflect.Descriptor instead.
func (*ApplyConditionRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{33}
}

func (x *ApplyConditionRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *ApplyConditionRequest) GetConditionName() string {
	if x != nil {
		return x.ConditionName
	}
	return ""
}

func (x *ApplyConditionRequest) GetDurationKind() string {
	if x != nil {
		return x.DurationKind
	}
	return ""
}

func (x *ApplyConditionRequest) GetDurationValue() int32 {
	if x != nil {
		return x.DurationValue
	}
	return 0
}

func (x *ApplyConditionRequest) GetSaveDc() int32 {
	if x != nil {
		return x.SaveDc
	}
	return 0
}

func (x *ApplyConditionRequest) GetSaveAbility() string {
	if x != nil {
		return x.SaveAbility
	}
	return ""
}

func (x *ApplyConditionRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ConditionInstance struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ParticipantId  string                 `protobuf:"bytes,2,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	ConditionName  string                 `protobuf:"bytes,3,opt,name=condition_name,json=conditionName,proto3" json:"condition_name,omitempty"`
	DurationKind   string                 `protobuf:"bytes,4,opt,name=duration_kind,json=durationKind,proto3" json:"duration_kind,omitempty"`
	DurationValue  int32                  `protobuf:"varint,5,opt,name=duration_value,json=durationValue,proto3" json:"duration_value,omitempty"`
	SaveDc         int32                  `protobuf:"varint,6,opt,name=save_dc,json=saveDc,proto3" json:"save_dc,omitempty"`
	SaveAbility    string                 `protobuf:"bytes,7,opt,name=save_ability,json=saveAbility,proto3" json:"save_ability,omitempty"`
	Source         string                 `protobuf:"bytes,8,opt,name=source,proto3" json:"source,omitempty"`
	AppliedAtRound int32                  `protobuf:"varint,9,opt,name=applied_at_round,json=appliedAtRound,proto3" json:"applied_at_round,omitempty"`
	ExpiresAtRound *int32                 `protobuf:"varint,10,opt,name=expires_at_round,json=expiresAtRound,proto3,oneof" json:"expires_at_round,omitempty"`
	IsActive       bool                   `protobuf:"varint,11,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConditionInstance) Reset() {
	*x = ConditionInstance{}
	mi := &file_combat_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConditionInstance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConditionInstance) ProtoMessage() {}

func (x *ConditionInstance) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConditionInstance.ProtoReflect.Descriptor instead.
func (*ConditionInstance) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{34}
}

func (x *ConditionInstance) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ConditionInstance) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *ConditionInstance) GetConditionName() string {
	if x != nil {
		return x.ConditionName
	}
	return ""
}

func (x *ConditionInstance) GetDurationKind() string {
	if x != nil {
		return x.DurationKind
	}
	return ""
}

func (x *ConditionInstance) GetDurationValue() int32 {
	if x != nil {
		return x.DurationValue
	}
	return 0
}

func (x *ConditionInstance) GetSaveDc() int32 {
	if x != nil {
		return x.SaveDc
	}
	return 0
}

func (x *ConditionInstance) GetSaveAbility() string {
	if x != nil {
		return x.SaveAbility
	}
	return ""
}

func (x *ConditionInstance) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ConditionInstance) GetAppliedAtRound() int32 {
	if x != nil {
		return x.AppliedAtRound
	}
	return 0
}

func (x *ConditionInstance) GetExpiresAtRound() int32 {
	if x != nil && x.ExpiresAtRound != nil {
		return *x.ExpiresAtRound
	}
	return 0
}

func (x *ConditionInstance) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type ConflictWarning struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Kind                string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Existing            string                 `protobuf:"bytes,2,opt,name=existing,proto3" json:"existing,omitempty"`
	Applied             string                 `protobuf:"bytes,3,opt,name=applied,proto3" json:"applied,omitempty"`
	DeactivatesExisting bool                   `protobuf:"varint,4,opt,name=deactivates_existing,json=deactivatesExisting,proto3" json:"deactivates_existing,omitempty"`
	Message             string                 `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ConflictWarning) Reset() {
	*x = ConflictWarning{}
	mi := &file_combat_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConflictWarning) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConflictWarning) ProtoMessage() {}

func (x *ConflictWarning) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConflictWarning.ProtoReflect.Descriptor instead.
func (*ConflictWarning) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{35}
}

func (x *ConflictWarning) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ConflictWarning) GetExisting() string {
	if x != nil {
		return x.Existing
	}
	return ""
}

func (x *ConflictWarning) GetApplied() string {
	if x != nil {
		return x.Applied
	}
	return ""
}

func (x *ConflictWarning) GetDeactivatesExisting() bool {
	if x != nil {
		return x.DeactivatesExisting
	}
	return false
}

func (x *ConflictWarning) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ApplyConditionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Condition     *ConditionInstance     `protobuf:"bytes,1,opt,name=condition,proto3" json:"condition,omitempty"`
	Warnings      []*ConflictWarning     `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyConditionResponse) Reset() {
	*x = ApplyConditionResponse{}
	mi := &file_combat_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyConditionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyConditionResponse) ProtoMessage() {}

func (x *ApplyConditionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyConditionResponse.ProtoReflect.Descriptor instead.
func (*ApplyConditionResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{36}
}

func (x *ApplyConditionResponse) GetCondition() *ConditionInstance {
	if x != nil {
		return x.Condition
	}
	return nil
}

func (x *ApplyConditionResponse) GetWarnings() []*ConflictWarning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type RemoveConditionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ConditionId   string                 `protobuf:"bytes,1,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveConditionRequest) Reset() {
	*x = RemoveConditionRequest{}
	mi := &file_combat_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveConditionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveConditionRequest) ProtoMessage() {}

func (x *RemoveConditionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveConditionRequest.ProtoReflect.Descriptor instead.
func (*RemoveConditionRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{37}
}

func (x *RemoveConditionRequest) GetConditionId() string {
	if x != nil {
		return x.ConditionId
	}
	return ""
}

type RemoveConditionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveConditionResponse) Reset() {
	*x = RemoveConditionResponse{}
	mi := &file_combat_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveConditionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveConditionResponse) ProtoMessage() {}

func (x *RemoveConditionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveConditionResponse.ProtoReflect.Descriptor instead.
func (*RemoveConditionResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{38}
}

type AttemptSaveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ConditionId   string                 `protobuf:"bytes,1,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	SaveRoll      int32                  `protobuf:"varint,2,opt,name=save_roll,json=saveRoll,proto3" json:"save_roll,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttemptSaveRequest) Reset() {
	*x = AttemptSaveRequest{}
	mi := &file_combat_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttemptSaveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttemptSaveRequest) ProtoMessage() {}

func (x *AttemptSaveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttemptSaveRequest.ProtoReflect.Descriptor instead.
func (*AttemptSaveRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{39}
}

func (x *AttemptSaveRequest) GetConditionId() string {
	if x != nil {
		return x.ConditionId
	}
	return ""
}

func (x *AttemptSaveRequest) GetSaveRoll() int32 {
	if x != nil {
		return x.SaveRoll
	}
	return 0
}

type SaveResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Saved            bool                   `protobuf:"varint,1,opt,name=saved,proto3" json:"saved,omitempty"`
	ConditionRemoved bool                   `protobuf:"varint,2,opt,name=condition_removed,json=conditionRemoved,proto3" json:"condition_removed,omitempty"`
	Message          string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SaveResult) Reset() {
	*x = SaveResult{}
	mi := &file_combat_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveResult) ProtoMessage() {}

func (x *SaveResult) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveResult.ProtoReflect.Descriptor instead.
func (*SaveResult) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{40}
}

func (x *SaveResult) GetSaved() bool {
	if x != nil {
		return x.Saved
	}
	return false
}

func (x *SaveResult) GetConditionRemoved() bool {
	if x != nil {
		return x.ConditionRemoved
	}
	return false
}

func (x *SaveResult) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type GetActiveConditionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveConditionsRequest) Reset() {
	*x = GetActiveConditionsRequest{}
	mi := &file_combat_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveConditionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveConditionsRequest) ProtoMessage() {}

func (x *GetActiveConditionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveConditionsRequest.ProtoReflect.Descriptor instead.
func (*GetActiveConditionsRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{41}
}

func (x *GetActiveConditionsRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

type ActiveCondition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Instance      *ConditionInstance     `protobuf:"bytes,1,opt,name=instance,proto3" json:"instance,omitempty"`
	Definition    *ConditionDefinition   `protobuf:"bytes,2,opt,name=definition,proto3" json:"definition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActiveCondition) Reset() {
	*x = ActiveCondition{}
	mi := &file_combat_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActiveCondition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActiveCondition) ProtoMessage() {}

func (x *ActiveCondition) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActiveCondition.ProtoReflect.Descriptor instead.
func (*ActiveCondition) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{42}
}

func (x *ActiveCondition) GetInstance() *ConditionInstance {
	if x != nil {
		return x.Instance
	}
	return nil
}

func (x *ActiveCondition) GetDefinition() *ConditionDefinition {
	if x != nil {
		return x.Definition
	}
	return nil
}

type ActiveConditions struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Conditions    []*ActiveCondition     `protobuf:"bytes,1,rep,name=conditions,proto3" json:"conditions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActiveConditions) Reset() {
	*x = ActiveConditions{}
	mi := &file_combat_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActiveConditions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActiveConditions) ProtoMessage() {}

func (x *ActiveConditions) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActiveConditions.ProtoReflect.Descriptor instead.
func (*ActiveConditions) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{43}
}

func (x *ActiveConditions) GetConditions() []*ActiveCondition {
	if x != nil {
		return x.Conditions
	}
	return nil
}

type GetMechanicalEffectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ParticipantId string                 `protobuf:"bytes,1,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMechanicalEffectsRequest) Reset() {
	*x = GetMechanicalEffectsRequest{}
	mi := &file_combat_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMechanicalEffectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMechanicalEffectsRequest) ProtoMessage() {}

func (x *GetMechanicalEffectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMechanicalEffectsRequest.ProtoReflect.Descriptor instead.
func (*GetMechanicalEffectsRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{44}
}

func (x *GetMechanicalEffectsRequest) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

type MechanicalEffect struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MechanicalEffect) Reset() {
	*x = MechanicalEffect{}
	mi := &file_combat_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MechanicalEffect) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MechanicalEffect) ProtoMessage() {}

func (x *MechanicalEffect) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MechanicalEffect.ProtoReflect.Descriptor instead.
func (*MechanicalEffect) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{45}
}

func (x *MechanicalEffect) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *MechanicalEffect) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type MechanicalEffects struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Effects       []*MechanicalEffect    `protobuf:"bytes,1,rep,name=effects,proto3" json:"effects,omitempty"`
	Sources       []string               `protobuf:"bytes,2,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MechanicalEffects) Reset() {
	*x = MechanicalEffects{}
	mi := &file_combat_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MechanicalEffects) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MechanicalEffects) ProtoMessage() {}

func (x *MechanicalEffects) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MechanicalEffects.ProtoReflect.Descriptor instead.
func (*MechanicalEffects) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{46}
}

func (x *MechanicalEffects) GetEffects() []*MechanicalEffect {
	if x != nil {
		return x.Effects
	}
	return nil
}

func (x *MechanicalEffects) GetSources() []string {
	if x != nil {
		return x.Sources
	}
	return nil
}

type PendingSave struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ConditionId   string                 `protobuf:"bytes,1,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	ParticipantId string                 `protobuf:"bytes,2,opt,name=participant_id,json=participantId,proto3" json:"participant_id,omitempty"`
	ConditionName string                 `protobuf:"bytes,3,opt,name=condition_name,json=conditionName,proto3" json:"condition_name,omitempty"`
	SaveDc        int32                  `protobuf:"varint,4,opt,name=save_dc,json=saveDc,proto3" json:"save_dc,omitempty"`
	SaveAbility   string                 `protobuf:"bytes,5,opt,name=save_ability,json=saveAbility,proto3" json:"save_ability,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingSave) Reset() {
	*x = PendingSave{}
	mi := &file_combat_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingSave) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingSave) ProtoMessage() {}

func (x *PendingSave) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingSave.ProtoReflect.Descriptor instead.
func (*PendingSave) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{47}
}

func (x *PendingSave) GetConditionId() string {
	if x != nil {
		return x.ConditionId
	}
	return ""
}

func (x *PendingSave) GetParticipantId() string {
	if x != nil {
		return x.ParticipantId
	}
	return ""
}

func (x *PendingSave) GetConditionName() string {
	if x != nil {
		return x.ConditionName
	}
	return ""
}

func (x *PendingSave) GetSaveDc() int32 {
	if x != nil {
		return x.SaveDc
	}
	return 0
}

func (x *PendingSave) GetSaveAbility() string {
	if x != nil {
		return x.SaveAbility
	}
	return ""
}

type ListConditionLibraryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConditionLibraryRequest) Reset() {
	*x = ListConditionLibraryRequest{}
	mi := &file_combat_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConditionLibraryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConditionLibraryRequest) ProtoMessage() {}

func (x *ListConditionLibraryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConditionLibraryRequest.ProtoReflect.Descriptor instead.
func (*ListConditionLibraryRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{48}
}

type ConditionDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Icon          string                 `protobuf:"bytes,3,opt,name=icon,proto3" json:"icon,omitempty"`
	Effects       []*MechanicalEffect    `protobuf:"bytes,4,rep,name=effects,proto3" json:"effects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConditionDefinition) Reset() {
	*x = ConditionDefinition{}
	mi := &file_combat_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConditionDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConditionDefinition) ProtoMessage() {}

func (x *ConditionDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConditionDefinition.ProtoReflect.Descriptor instead.
func (*ConditionDefinition) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{49}
}

func (x *ConditionDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ConditionDefinition) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ConditionDefinition) GetIcon() string {
	if x != nil {
		return x.Icon
	}
	return ""
}

func (x *ConditionDefinition) GetEffects() []*MechanicalEffect {
	if x != nil {
		return x.Effects
	}
	return nil
}

type ConditionLibrary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Conditions    []*ConditionDefinition `protobuf:"bytes,1,rep,name=conditions,proto3" json:"conditions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConditionLibrary) Reset() {
	*x = ConditionLibrary{}
	mi := &file_combat_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConditionLibrary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConditionLibrary) ProtoMessage() {}

func (x *ConditionLibrary) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConditionLibrary.ProtoReflect.Descriptor instead.
func (*ConditionLibrary) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{50}
}

func (x *ConditionLibrary) GetConditions() []*ConditionDefinition {
	if x != nil {
		return x.Conditions
	}
	return nil
}

var File_combat_proto protoreflect.FileDescriptor

const file_combat_proto_rawDesc = "" +
	"\n" +
	"\fcombat.proto\x12\tcombat.v1\"\xa5\x01\n" +
	"\tEncounter\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12#\n" +
	"\rcurrent_round\x18\x04 \x01(\x05R\fcurrentRound\x12,\n" +
	"\x12current_turn_index\x18\x05 \x01(\x05R\x10currentTurnIndex\"\xfd\x02\n" +
	"\x10ParticipantInput\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcharacter_id\x18\x02 \x01(\tR\vcharacterId\x12\x17\n" +
	"\anpc_ref\x18\x03 \x01(\tR\x06npcRef\x12\x15\n" +
	"\x06max_hp\x18\x04 \x01(\x05R\x05maxHp\x12\"\n" +
	"\n" +
	"current_hp\x18\x05 \x01(\x05H\x00R\tcurrentHp\x88\x01\x01\x12/\n" +
	"\x13initiative_modifier\x18\x06 \x01(\x05R\x12initiativeModifier\x12#\n" +
	"\n" +
	"initiative\x18\a \x01(\x05H\x01R\n" +
	"initiative\x88\x01\x01\x12 \n" +
	"\vresistances\x18\b \x03(\tR\vresistances\x12(\n" +
	"\x0fvulnerabilities\x18\t \x03(\tR\x0fvulnerabilities\x12\x1e\n" +
	"\n" +
	"immunities\x18\n" +
	" \x03(\tR\n" +
	"immunitiesB\r\n" +
	"\v_current_hpB\r\n" +
	"\v_initiative\"\x94\x03\n" +
	"\vParticipant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fencounter_id\x18\x02 \x01(\tR\vencounterId\x12!\n" +
	"\fcharacter_id\x18\x03 \x01(\tR\vcharacterId\x12\x17\n" +
	"\anpc_ref\x18\x04 \x01(\tR\x06npcRef\x12\x12\n" +
	"\x04name\x18\x05 \x01(\tR\x04name\x12)\n" +
	"\x10initiative_total\x18\x06 \x01(\x05R\x0finitiativeTotal\x12/\n" +
	"\x13initiative_modifier\x18\a \x01(\x05R\x12initiativeModifier\x12\x1d\n" +
	"\n" +
	"turn_order\x18\b \x01(\x05R\tturnOrder\x12\x1b\n" +
	"\tis_active\x18\t \x01(\bR\bisActive\x12 \n" +
	"\vresistances\x18\n" +
	" \x03(\tR\vresistances\x12(\n" +
	"\x0fvulnerabilities\x18\v \x03(\tR\x0fvulnerabilities\x12\x1e\n" +
	"\n" +
	"immunities\x18\f \x03(\tR\n" +
	"immunities\"\xad\x02\n" +
	"\x11ParticipantStatus\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x15\n" +
	"\x06max_hp\x18\x02 \x01(\x05R\x05maxHp\x12\x1d\n" +
	"\n" +
	"current_hp\x18\x03 \x01(\x05R\tcurrentHp\x12\x17\n" +
	"\atemp_hp\x18\x04 \x01(\x05R\x06tempHp\x120\n" +
	"\x14death_save_successes\x18\x05 \x01(\x05R\x12deathSaveSuccesses\x12.\n" +
	"\x13death_save_failures\x18\x06 \x01(\x05R\x11deathSaveFailures\x12!\n" +
	"\fis_conscious\x18\a \x01(\bR\visConscious\x12\x1d\n" +
	"\n" +
	"life_state\x18\b \x01(\tR\tlifeState\"\x9b\x01\n" +
	"\x12StartCombatRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12?\n" +
	"\fparticipants\x18\x02 \x03(\v2\x1b.combat.v1.ParticipantInputR\fparticipants\x12%\n" +
	"\x0esurprise_round\x18\x03 \x01(\bR\rsurpriseRound\"\xb7\x01\n" +
	"\vCombatState\x122\n" +
	"\tencounter\x18\x01 \x01(\v2\x14.combat.v1.EncounterR\tencounter\x12:\n" +
	"\fparticipants\x18\x02 \x03(\v2\x16.combat.v1.ParticipantR\fparticipants\x128\n" +
	"\bstatuses\x18\x03 \x03(\v2\x1c.combat.v1.ParticipantStatusR\bstatuses\":\n" +
	"\x15GetCombatStateRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"5\n" +
	"\x10EndCombatRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"y\n" +
	"\x15AddParticipantRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\x12=\n" +
	"\vparticipant\x18\x02 \x01(\v2\x1b.combat.v1.ParticipantInputR\vparticipant\"A\n" +
	"\x18RemoveParticipantRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\"\x1b\n" +
	"\x19RemoveParticipantResponse\"1\n" +
	"\x0fRollDiceRequest\x12\x1e\n" +
	"\n" +
	"expression\x18\x01 \x01(\tR\n" +
	"expression\"p\n" +
	"\bDiceRoll\x12\x1e\n" +
	"\n" +
	"expression\x18\x01 \x01(\tR\n" +
	"expression\x12\x12\n" +
	"\x04dice\x18\x02 \x03(\x05R\x04dice\x12\x1a\n" +
	"\bmodifier\x18\x03 \x01(\x05R\bmodifier\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\"\xb1\x01\n" +
	"\x15RollInitiativeRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\x12%\n" +
	"\x0eparticipant_id\x18\x02 \x01(\tR\rparticipantId\x12\x17\n" +
	"\x04roll\x18\x03 \x01(\x05H\x00R\x04roll\x88\x01\x01\x12\x1f\n" +
	"\bmodifier\x18\x04 \x01(\x05H\x01R\bmodifier\x88\x01\x01B\a\n" +
	"\x05_rollB\v\n" +
	"\t_modifier\"}\n" +
	"\x0eInitiativeRoll\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x12\n" +
	"\x04roll\x18\x02 \x01(\x05R\x04roll\x12\x1a\n" +
	"\bmodifier\x18\x03 \x01(\x05R\bmodifier\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\"\x81\x01\n" +
	"\x18ReorderInitiativeRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\x12%\n" +
	"\x0eparticipant_id\x18\x02 \x01(\tR\rparticipantId\x12\x1b\n" +
	"\tnew_total\x18\x03 \x01(\x05R\bnewTotal\"\x1b\n" +
	"\x19ReorderInitiativeResponse\"8\n" +
	"\x13GetTurnOrderRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"G\n" +
	"\tTurnOrder\x12:\n" +
	"\fparticipants\x18\x01 \x03(\v2\x16.combat.v1.ParticipantR\fparticipants\":\n" +
	"\x15GetCurrentTurnRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"7\n" +
	"\x12AdvanceTurnRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"\xf8\x02\n" +
	"\vTurnAdvance\x12I\n" +
	"\x14previous_participant\x18\x01 \x01(\v2\x16.combat.v1.ParticipantR\x13previousParticipant\x12G\n" +
	"\x13current_participant\x18\x02 \x01(\v2\x16.combat.v1.ParticipantR\x12currentParticipant\x12\x1b\n" +
	"\tnew_round\x18\x03 \x01(\bR\bnewRound\x12!\n" +
	"\fround_number\x18\x04 \x01(\x05R\vroundNumber\x12K\n" +
	"\x12expired_conditions\x18\x05 \x03(\v2\x1c.combat.v1.ConditionInstanceR\x11expiredConditions\x12H\n" +
	"\x14saving_throws_needed\x18\x06 \x03(\v2\x16.combat.v1.PendingSaveR\x12savingThrowsNeeded\"\xb3\x02\n" +
	"\x12ApplyDamageRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\x12\x1f\n" +
	"\vdamage_type\x18\x03 \x01(\tR\n" +
	"damageType\x12-\n" +
	"\x12ignore_resistances\x18\x04 \x01(\bR\x11ignoreResistances\x12+\n" +
	"\x11ignore_immunities\x18\x05 \x01(\bR\x10ignoreImmunities\x122\n" +
	"\x15source_participant_id\x18\x06 \x01(\tR\x13sourceParticipantId\x12-\n" +
	"\x12source_description\x18\a \x01(\tR\x11sourceDescription\"\x86\x04\n" +
	"\fDamageResult\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12)\n" +
	"\x10damage_requested\x18\x02 \x01(\x05R\x0fdamageRequested\x12%\n" +
	"\x0edamage_applied\x18\x03 \x01(\x05R\rdamageApplied\x12(\n" +
	"\x10temp_hp_absorbed\x18\x04 \x01(\x05R\x0etempHpAbsorbed\x12\x17\n" +
	"\ahp_lost\x18\x05 \x01(\x05R\x06hpLost\x12\x1d\n" +
	"\n" +
	"current_hp\x18\x06 \x01(\x05R\tcurrentHp\x12\x17\n" +
	"\atemp_hp\x18\a \x01(\x05R\x06tempHp\x12!\n" +
	"\fis_conscious\x18\b \x01(\bR\visConscious\x12%\n" +
	"\x0emassive_damage\x18\t \x01(\bR\rmassiveDamage\x12\x1d\n" +
	"\n" +
	"life_state\x18\n" +
	" \x01(\tR\tlifeState\x121\n" +
	"\x14effective_resistance\x18\v \x01(\bR\x13effectiveResistance\x127\n" +
	"\x17effective_vulnerability\x18\f \x01(\bR\x16effectiveVulnerability\x12-\n" +
	"\x12effective_immunity\x18\r \x01(\bR\x11effectiveImmunity\"j\n" +
	"\x11HealDamageRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"\xdb\x01\n" +
	"\rHealingResult\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12)\n" +
	"\x10amount_requested\x18\x02 \x01(\x05R\x0famountRequested\x12#\n" +
	"\ramount_healed\x18\x03 \x01(\x05R\famountHealed\x12\x1a\n" +
	"\boverheal\x18\x04 \x01(\x05R\boverheal\x12\x1d\n" +
	"\n" +
	"current_hp\x18\x05 \x01(\x05R\tcurrentHp\x12\x18\n" +
	"\arevived\x18\x06 \x01(\bR\arevived\"Q\n" +
	"\x10SetTempHpRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\"Q\n" +
	"\x14RollDeathSaveRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x12\n" +
	"\x04roll\x18\x02 \x01(\x05R\x04roll\"\xf8\x01\n" +
	"\x0fDeathSaveResult\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12\x12\n" +
	"\x04roll\x18\x02 \x01(\x05R\x04roll\x12\x18\n" +
	"\aoutcome\x18\x03 \x01(\tR\aoutcome\x12\x1c\n" +
	"\tsuccesses\x18\x04 \x01(\x05R\tsuccesses\x12\x1a\n" +
	"\bfailures\x18\x05 \x01(\x05R\bfailures\x12\x1d\n" +
	"\n" +
	"life_state\x18\x06 \x01(\tR\tlifeState\x12\x18\n" +
	"\arevived\x18\a \x01(\bR\arevived\x12\x1d\n" +
	"\n" +
	"current_hp\x18\b \x01(\x05R\tcurrentHp\"D\n" +
	"\x1bGetParticipantStatusRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\"8\n" +
	"\x13GetDamageLogRequest\x12!\n" +
	"\fencounter_id\x18\x01 \x01(\tR\vencounterId\"\xf9\x01\n" +
	"\x0eDamageLogEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0eparticipant_id\x18\x02 \x01(\tR\rparticipantId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x05R\x06amount\x12\x1f\n" +
	"\vdamage_type\x18\x04 \x01(\tR\n" +
	"damageType\x122\n" +
	"\x15source_participant_id\x18\x05 \x01(\tR\x13sourceParticipantId\x12-\n" +
	"\x12source_description\x18\x06 \x01(\tR\x11sourceDescription\x12\x14\n" +
	"\x05round\x18\a \x01(\x05R\x05round\"@\n" +
	"\tDamageLog\x123\n" +
	"\aentries\x18\x01 \x03(\v2\x19.combat.v1.DamageLogEntryR\aentries\"\x85\x02\n" +
	"\x15ApplyConditionRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\x12%\n" +
	"\x0econdition_name\x18\x02 \x01(\tR\rconditionName\x12#\n" +
	"\rduration_kind\x18\x03 \x01(\tR\fdurationKind\x12%\n" +
	"\x0eduration_value\x18\x04 \x01(\x05R\rdurationValue\x12\x17\n" +
	"\asave_dc\x18\x05 \x01(\x05R\x06saveDc\x12!\n" +
	"\fsave_ability\x18\x06 \x01(\tR\vsaveAbility\x12\x16\n" +
	"\x06source\x18\a \x01(\tR\x06source\"\x9c\x03\n" +
	"\x11ConditionInstance\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0eparticipant_id\x18\x02 \x01(\tR\rparticipantId\x12%\n" +
	"\x0econdition_name\x18\x03 \x01(\tR\rconditionName\x12#\n" +
	"\rduration_kind\x18\x04 \x01(\tR\fdurationKind\x12%\n" +
	"\x0eduration_value\x18\x05 \x01(\x05R\rdurationValue\x12\x17\n" +
	"\asave_dc\x18\x06 \x01(\x05R\x06saveDc\x12!\n" +
	"\fsave_ability\x18\a \x01(\tR\vsaveAbility\x12\x16\n" +
	"\x06source\x18\b \x01(\tR\x06source\x12(\n" +
	"\x10applied_at_round\x18\t \x01(\x05R\x0eappliedAtRound\x12-\n" +
	"\x10expires_at_round\x18\n" +
	" \x01(\x05H\x00R\x0eexpiresAtRound\x88\x01\x01\x12\x1b\n" +
	"\tis_active\x18\v \x01(\bR\bisActiveB\x13\n" +
	"\x11_expires_at_round\"\xa8\x01\n" +
	"\x0fConflictWarning\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1a\n" +
	"\bexisting\x18\x02 \x01(\tR\bexisting\x12\x18\n" +
	"\aapplied\x18\x03 \x01(\tR\aapplied\x121\n" +
	"\x14deactivates_existing\x18\x04 \x01(\bR\x13deactivatesExisting\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\"\x8c\x01\n" +
	"\x16ApplyConditionResponse\x12:\n" +
	"\tcondition\x18\x01 \x01(\v2\x1c.combat.v1.ConditionInstanceR\tcondition\x126\n" +
	"\bwarnings\x18\x02 \x03(\v2\x1a.combat.v1.ConflictWarningR\bwarnings\";\n" +
	"\x16RemoveConditionRequest\x12!\n" +
	"\fcondition_id\x18\x01 \x01(\tR\vconditionId\"\x19\n" +
	"\x17RemoveConditionResponse\"T\n" +
	"\x12AttemptSaveRequest\x12!\n" +
	"\fcondition_id\x18\x01 \x01(\tR\vconditionId\x12\x1b\n" +
	"\tsave_roll\x18\x02 \x01(\x05R\bsaveRoll\"i\n" +
	"\n" +
	"SaveResult\x12\x14\n" +
	"\x05saved\x18\x01 \x01(\bR\x05saved\x12+\n" +
	"\x11condition_removed\x18\x02 \x01(\bR\x10conditionRemoved\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"C\n" +
	"\x1aGetActiveConditionsRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\"\x8b\x01\n" +
	"\x0fActiveCondition\x128\n" +
	"\binstance\x18\x01 \x01(\v2\x1c.combat.v1.ConditionInstanceR\binstance\x12>\n" +
	"\n" +
	"definition\x18\x02 \x01(\v2\x1e.combat.v1.ConditionDefinitionR\n" +
	"definition\"N\n" +
	"\x10ActiveConditions\x12:\n" +
	"\n" +
	"conditions\x18\x01 \x03(\v2\x1a.combat.v1.ActiveConditionR\n" +
	"conditions\"D\n" +
	"\x1bGetMechanicalEffectsRequest\x12%\n" +
	"\x0eparticipant_id\x18\x01 \x01(\tR\rparticipantId\":\n" +
	"\x10MechanicalEffect\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"d\n" +
	"\x11MechanicalEffects\x125\n" +
	"\aeffects\x18\x01 \x03(\v2\x1b.combat.v1.MechanicalEffectR\aeffects\x12\x18\n" +
	"\asources\x18\x02 \x03(\tR\asources\"\xba\x01\n" +
	"\vPendingSave\x12!\n" +
	"\fcondition_id\x18\x01 \x01(\tR\vconditionId\x12%\n" +
	"\x0eparticipant_id\x18\x02 \x01(\tR\rparticipantId\x12%\n" +
	"\x0econdition_name\x18\x03 \x01(\tR\rconditionName\x12\x17\n" +
	"\asave_dc\x18\x04 \x01(\x05R\x06saveDc\x12!\n" +
	"\fsave_ability\x18\x05 \x01(\tR\vsaveAbility\"\x1d\n" +
	"\x1bListConditionLibraryRequest\"\x96\x01\n" +
	"\x13ConditionDefinition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04icon\x18\x03 \x01(\tR\x04icon\x125\n" +
	"\aeffects\x18\x04 \x03(\v2\x1b.combat.v1.MechanicalEffectR\aeffects\"R\n" +
	"\x10ConditionLibrary\x12>\n" +
	"\n" +
	"conditions\x18\x01 \x03(\v2\x1e.combat.v1.ConditionDefinitionR\n" +
	"conditions2\xa4\x0e\n" +
	"\rCombatService\x12D\n" +
	"\vStartCombat\x12\x1d.combat.v1.StartCombatRequest\x1a\x16.combat.v1.CombatState\x12J\n" +
	"\x0eGetCombatState\x12 .combat.v1.GetCombatStateRequest\x1a\x16.combat.v1.CombatState\x12>\n" +
	"\tEndCombat\x12\x1b.combat.v1.EndCombatRequest\x1a\x14.combat.v1.Encounter\x12J\n" +
	"\x0eAddParticipant\x12 .combat.v1.AddParticipantRequest\x1a\x16.combat.v1.Participant\x12^\n" +
	"\x11RemoveParticipant\x12#.combat.v1.RemoveParticipantRequest\x1a$.combat.v1.RemoveParticipantResponse\x12;\n" +
	"\bRollDice\x12\x1a.combat.v1.RollDiceRequest\x1a\x13.combat.v1.DiceRoll\x12M\n" +
	"\x0eRollInitiative\x12 .combat.v1.RollInitiativeRequest\x1a\x19.combat.v1.InitiativeRoll\x12^\n" +
	"\x11ReorderInitiative\x12#.combat.v1.ReorderInitiativeRequest\x1a$.combat.v1.ReorderInitiativeResponse\x12D\n" +
	"\fGetTurnOrder\x12\x1e.combat.v1.GetTurnOrderRequest\x1a\x14.combat.v1.TurnOrder\x12J\n" +
	"\x0eGetCurrentTurn\x12 .combat.v1.GetCurrentTurnRequest\x1a\x16.combat.v1.Participant\x12D\n" +
	"\vAdvanceTurn\x12\x1d.combat.v1.AdvanceTurnRequest\x1a\x16.combat.v1.TurnAdvance\x12E\n" +
	"\vApplyDamage\x12\x1d.combat.v1.ApplyDamageRequest\x1a\x17.combat.v1.DamageResult\x12D\n" +
	"\n" +
	"HealDamage\x12\x1c.combat.v1.HealDamageRequest\x1a\x18.combat.v1.HealingResult\x12F\n" +
	"\tSetTempHp\x12\x1b.combat.v1.SetTempHpRequest\x1a\x1c.combat.v1.ParticipantStatus\x12L\n" +
	"\rRollDeathSave\x12\x1f.combat.v1.RollDeathSaveRequest\x1a\x1a.combat.v1.DeathSaveResult\x12\\\n" +
	"\x14GetParticipantStatus\x12&.combat.v1.GetParticipantStatusRequest\x1a\x1c.combat.v1.ParticipantStatus\x12D\n" +
	"\fGetDamageLog\x12\x1e.combat.v1.GetDamageLogRequest\x1a\x14.combat.v1.DamageLog\x12U\n" +
	"\x0eApplyCondition\x12 .combat.v1.ApplyConditionRequest\x1a!.combat.v1.ApplyConditionResponse\x12X\n" +
	"\x0fRemoveCondition\x12!.combat.v1.RemoveConditionRequest\x1a\".combat.v1.RemoveConditionResponse\x12C\n" +
	"\vAttemptSave\x12\x1d.combat.v1.AttemptSaveRequest\x1a\x15.combat.v1.SaveResult\x12Y\n" +
	"\x13GetActiveConditions\x12%.combat.v1.GetActiveConditionsRequest\x1a\x1b.combat.v1.ActiveConditions\x12\\\n" +
	"\x14GetMechanicalEffects\x12&.combat.v1.GetMechanicalEffectsRequest\x1a\x1c.combat.v1.MechanicalEffects\x12[\n" +
	"\x14ListConditionLibrary\x12&.combat.v1.ListConditionLibraryRequest\x1a\x1b.combat.v1.ConditionLibraryBDZBgithub.com/cory-johannsen/gametable/internal/combatserver/combatv1b\x06proto3"

var (
	file_combat_proto_rawDescOnce sync.Once
	file_combat_proto_rawDescData []byte
)

func file_combat_proto_rawDescGZIP() []byte {
	file_combat_proto_rawDescOnce.Do(func() {
		file_combat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_combat_proto_rawDesc), len(file_combat_proto_rawDesc)))
	})
	return file_combat_proto_rawDescData
}

var file_combat_proto_msgTypes = make([]protoimpl.MessageInfo, 51)
var file_combat_proto_goTypes = []any{
	(*Encounter)(nil),                   // 0: combat.v1.Encounter
	(*ParticipantInput)(nil),            // 1: combat.v1.ParticipantInput
	(*Participant)(nil),                 // 2: combat.v1.Participant
	(*ParticipantStatus)(nil),           // 3: combat.v1.ParticipantStatus
	(*StartCombatRequest)(nil),          // 4: combat.v1.StartCombatRequest
	(*CombatState)(nil),                 // 5: combat.v1.CombatState
	(*GetCombatStateRequest)(nil),       // 6: combat.v1.GetCombatStateRequest
	(*EndCombatRequest)(nil),            // 7: combat.v1.EndCombatRequest
	(*AddParticipantRequest)(nil),       // 8: combat.v1.AddParticipantRequest
	(*RemoveParticipantRequest)(nil),    // 9: combat.v1.RemoveParticipantRequest
	(*RemoveParticipantResponse)(nil),   // 10: combat.v1.RemoveParticipantResponse
	(*RollDiceRequest)(nil),             // 11: combat.v1.RollDiceRequest
	(*DiceRoll)(nil),                    // 12: combat.v1.DiceRoll
	(*RollInitiativeRequest)(nil),       // 13: combat.v1.RollInitiativeRequest
	(*InitiativeRoll)(nil),              // 14: combat.v1.InitiativeRoll
	(*ReorderInitiativeRequest)(nil),    // 15: combat.v1.ReorderInitiativeRequest
	(*ReorderInitiativeResponse)(nil),   // 16: combat.v1.ReorderInitiativeResponse
	(*GetTurnOrderRequest)(nil),         // 17: combat.v1.GetTurnOrderRequest
	(*TurnOrder)(nil),                   // 18: combat.v1.TurnOrder
	(*GetCurrentTurnRequest)(nil),       // 19: combat.v1.GetCurrentTurnRequest
	(*AdvanceTurnRequest)(nil),          // 20: combat.v1.AdvanceTurnRequest
	(*TurnAdvance)(nil),                 // 21: combat.v1.TurnAdvance
	(*ApplyDamageRequest)(nil),          // 22: combat.v1.ApplyDamageRequest
	(*DamageResult)(nil),                // 23: combat.v1.DamageResult
	(*HealDamageRequest)(nil),           // 24: combat.v1.HealDamageRequest
	(*HealingResult)(nil),               // 25: combat.v1.HealingResult
	(*SetTempHpRequest)(nil),            // 26: combat.v1.SetTempHpRequest
	(*RollDeathSaveRequest)(nil),        // 27: combat.v1.RollDeathSaveRequest
	(*DeathSaveResult)(nil),             // 28: combat.v1.DeathSaveResult
	(*GetParticipantStatusRequest)(nil), // 29: combat.v1.GetParticipantStatusRequest
	(*GetDamageLogRequest)(nil),         // 30: combat.v1.GetDamageLogRequest
	(*DamageLogEntry)(nil),              // 31: combat.v1.DamageLogEntry
	(*DamageLog)(nil),                   // 32: combat.v1.DamageLog
	(*ApplyConditionRequest)(nil),       // 33: combat.v1.ApplyConditionRequest
	(*ConditionInstance)(nil),           // 34: combat.v1.ConditionInstance
	(*ConflictWarning)(nil),             // 35: combat.v1.ConflictWarning
	(*ApplyConditionResponse)(nil),      // 36: combat.v1.ApplyConditionResponse
	(*RemoveConditionRequest)(nil),      // 37: combat.v1.RemoveConditionRequest
	(*RemoveConditionResponse)(nil),     // 38: combat.v1.RemoveConditionResponse
	(*AttemptSaveRequest)(nil),          // 39: combat.v1.AttemptSaveRequest
	(*SaveResult)(nil),                  // 40: combat.v1.SaveResult
	(*GetActiveConditionsRequest)(nil),  // 41: combat.v1.GetActiveConditionsRequest
	(*ActiveCondition)(nil),             // 42: combat.v1.ActiveCondition
	(*ActiveConditions)(nil),            // 43: combat.v1.ActiveConditions
	(*GetMechanicalEffectsRequest)(nil), // 44: combat.v1.GetMechanicalEffectsRequest
	(*MechanicalEffect)(nil),            // 45: combat.v1.MechanicalEffect
	(*MechanicalEffects)(nil),           // 46: combat.v1.MechanicalEffects
	(*PendingSave)(nil),                 // 47: combat.v1.PendingSave
	(*ListConditionLibraryRequest)(nil), // 48: combat.v1.ListConditionLibraryRequest
	(*ConditionDefinition)(nil),         // 49: combat.v1.ConditionDefinition
	(*ConditionLibrary)(nil),            // 50: combat.v1.ConditionLibrary
}
var file_combat_proto_depIdxs = []int32{
	1,  // 0: combat.v1.StartCombatRequest.participants:type_name -> combat.v1.ParticipantInput
	0,  // 1: combat.v1.CombatState.encounter:type_name -> combat.v1.Encounter
	2,  // 2: combat.v1.CombatState.participants:type_name -> combat.v1.Participant
	3,  // 3: combat.v1.CombatState.statuses:type_name -> combat.v1.ParticipantStatus
	1,  // 4: combat.v1.AddParticipantRequest.participant:type_name -> combat.v1.ParticipantInput
	2,  // 5: combat.v1.TurnOrder.participants:type_name -> combat.v1.Participant
	2,  // 6: combat.v1.TurnAdvance.previous_participant:type_name -> combat.v1.Participant
	2,  // 7: combat.v1.TurnAdvance.current_participant:type_name -> combat.v1.Participant
	34, // 8: combat.v1.TurnAdvance.expired_conditions:type_name -> combat.v1.ConditionInstance
	47, // 9: combat.v1.TurnAdvance.saving_throws_needed:type_name -> combat.v1.PendingSave
	31, // 10: combat.v1.DamageLog.entries:type_name -> combat.v1.DamageLogEntry
	34, // 11: combat.v1.ApplyConditionResponse.condition:type_name -> combat.v1.ConditionInstance
	35, // 12: combat.v1.ApplyConditionResponse.warnings:type_name -> combat.v1.ConflictWarning
	34, // 13: combat.v1.ActiveCondition.instance:type_name -> combat.v1.ConditionInstance
	49, // 14: combat.v1.ActiveCondition.definition:type_name -> combat.v1.ConditionDefinition
	42, // 15: combat.v1.ActiveConditions.conditions:type_name -> combat.v1.ActiveCondition
	45, // 16: combat.v1.MechanicalEffects.effects:type_name -> combat.v1.MechanicalEffect
	45, // 17: combat.v1.ConditionDefinition.effects:type_name -> combat.v1.MechanicalEffect
	49, // 18: combat.v1.ConditionLibrary.conditions:type_name -> combat.v1.ConditionDefinition
	4,  // 19: combat.v1.CombatService.StartCombat:input_type -> combat.v1.StartCombatRequest
	6,  // 20: combat.v1.CombatService.GetCombatState:input_type -> combat.v1.GetCombatStateRequest
	7,  // 21: combat.v1.CombatService.EndCombat:input_type -> combat.v1.EndCombatRequest
	8,  // 22: combat.v1.CombatService.AddParticipant:input_type -> combat.v1.AddParticipantRequest
	9,  // 23: combat.v1.CombatService.RemoveParticipant:input_type -> combat.v1.RemoveParticipantRequest
	11, // 24: combat.v1.CombatService.RollDice:input_type -> combat.v1.RollDiceRequest
	13, // 25: combat.v1.CombatService.RollInitiative:input_type -> combat.v1.RollInitiativeRequest
	15, // 26: combat.v1.CombatService.ReorderInitiative:input_type -> combat.v1.ReorderInitiativeRequest
	17, // 27: combat.v1.CombatService.GetTurnOrder:input_type -> combat.v1.GetTurnOrderRequest
	19, // 28: combat.v1.CombatService.GetCurrentTurn:input_type -> combat.v1.GetCurrentTurnRequest
	20, // 29: combat.v1.CombatService.AdvanceTurn:input_type -> combat.v1.AdvanceTurnRequest
	22, // 30: combat.v1.CombatService.ApplyDamage:input_type -> combat.v1.ApplyDamageRequest
	24, // 31: combat.v1.CombatService.HealDamage:input_type -> combat.v1.HealDamageRequest
	26, // 32: combat.v1.CombatService.SetTempHp:input_type -> combat.v1.SetTempHpRequest
	27, // 33: combat.v1.CombatService.RollDeathSave:input_type -> combat.v1.RollDeathSaveRequest
	29, // 34: combat.v1.CombatService.GetParticipantStatus:input_type -> combat.v1.GetParticipantStatusRequest
	30, // 35: combat.v1.CombatService.GetDamageLog:input_type -> combat.v1.GetDamageLogRequest
	33, // 36: combat.v1.CombatService.ApplyCondition:input_type -> combat.v1.ApplyConditionRequest
	37, // 37: combat.v1.CombatService.RemoveCondition:input_type -> combat.v1.RemoveConditionRequest
	39, // 38: combat.v1.CombatService.AttemptSave:input_type -> combat.v1.AttemptSaveRequest
	41, // 39: combat.v1.CombatService.GetActiveConditions:input_type -> combat.v1.GetActiveConditionsRequest
	44, // 40: combat.v1.CombatService.GetMechanicalEffects:input_type -> combat.v1.GetMechanicalEffectsRequest
	48, // 41: combat.v1.CombatService.ListConditionLibrary:input_type -> combat.v1.ListConditionLibraryRequest
	5,  // 42: combat.v1.CombatService.StartCombat:output_type -> combat.v1.CombatState
	5,  // 43: combat.v1.CombatService.GetCombatState:output_type -> combat.v1.CombatState
	0,  // 44: combat.v1.CombatService.EndCombat:output_type -> combat.v1.Encounter
	2,  // 45: combat.v1.CombatService.AddParticipant:output_type -> combat.v1.Participant
	10, // 46: combat.v1.CombatService.RemoveParticipant:output_type -> combat.v1.RemoveParticipantResponse
	12, // 47: combat.v1.CombatService.RollDice:output_type -> combat.v1.DiceRoll
	14, // 48: combat.v1.CombatService.RollInitiative:output_type -> combat.v1.InitiativeRoll
	16, // 49: combat.v1.CombatService.ReorderInitiative:output_type -> combat.v1.ReorderInitiativeResponse
	18, // 50: combat.v1.CombatService.GetTurnOrder:output_type -> combat.v1.TurnOrder
	2,  // 51: combat.v1.CombatService.GetCurrentTurn:output_type -> combat.v1.Participant
	21, // 52: combat.v1.CombatService.AdvanceTurn:output_type -> combat.v1.TurnAdvance
	23, // 53: combat.v1.CombatService.ApplyDamage:output_type -> combat.v1.DamageResult
	25, // 54: combat.v1.CombatService.HealDamage:output_type -> combat.v1.HealingResult
	3,  // 55: combat.v1.CombatService.SetTempHp:output_type -> combat.v1.ParticipantStatus
	28, // 56: combat.v1.CombatService.RollDeathSave:output_type -> combat.v1.DeathSaveResult
	3,  // 57: combat.v1.CombatService.GetParticipantStatus:output_type -> combat.v1.ParticipantStatus
	32, // 58: combat.v1.CombatService.GetDamageLog:output_type -> combat.v1.DamageLog
	36, // 59: combat.v1.CombatService.ApplyCondition:output_type -> combat.v1.ApplyConditionResponse
	38, // 60: combat.v1.CombatService.RemoveCondition:output_type -> combat.v1.RemoveConditionResponse
	40, // 61: combat.v1.CombatService.AttemptSave:output_type -> combat.v1.SaveResult
	43, // 62: combat.v1.CombatService.GetActiveConditions:output_type -> combat.v1.ActiveConditions
	46, // 63: combat.v1.CombatService.GetMechanicalEffects:output_type -> combat.v1.MechanicalEffects
	50, // 64: combat.v1.CombatService.ListConditionLibrary:output_type -> combat.v1.ConditionLibrary
	42, // [42:65] is the sub-list for method output_type
	19, // [19:42] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_combat_proto_init() }
func file_combat_proto_init() {
	if File_combat_proto != nil {
		return
	}
	file_combat_proto_msgTypes[1].OneofWrappers = []any{}
	file_combat_proto_msgTypes[13].OneofWrappers = []any{}
	file_combat_proto_msgTypes[34].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_combat_proto_rawDesc), len(file_combat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   51,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_combat_proto_goTypes,
		DependencyIndexes: file_combat_proto_depIdxs,
		MessageInfos:      file_combat_proto_msgTypes,
	}.Build()
	File_combat_proto = out.File
	file_combat_proto_goTypes = nil
	file_combat_proto_depIdxs = nil
}
