package models

// TransferRecord maps a product/segment to the phone number and chat queue
// used to escalate a call.
type TransferRecord struct {
	Segmento              string `csv:"segmento" json:"segmento" bson:"segmento"`
	Codigo                string `csv:"codigo" json:"codigo" bson:"codigo"`
	Produto               string `csv:"produto" json:"produto" bson:"produto"`
	TransferenciaTelefone string `csv:"transferencia_telefone" json:"transferencia_telefone" bson:"transferencia_telefone"`
	TransferenciaBlip     string `csv:"transferencia_blip" json:"transferencia_blip" bson:"transferencia_blip"`
}

// PhaseoutRecord describes a discontinued product and its recommended
// replacements. DataPhaseOut is free text, never parsed as a date.
type PhaseoutRecord struct {
	Unidade             string `csv:"unidade" json:"unidade" bson:"unidade"`
	Segmento            string `csv:"segmento" json:"segmento" bson:"segmento"`
	Item                string `csv:"item" json:"item" bson:"item"`
	Descricao           string `csv:"descricao" json:"descricao" bson:"descricao"`
	Modelo              string `csv:"modelo" json:"modelo" bson:"modelo"`
	DataPhaseOut        string `csv:"data_phase_out" json:"data_phase_out" bson:"data_phase_out"`
	SubstitutoDireto    string `csv:"substituto_direto" json:"substituto_direto" bson:"substituto_direto"`
	DescricaoSubsDir    string `csv:"descricao_subs_dir" json:"descricao_subs_dir" bson:"descricao_subs_dir"`
	SubstitutoIndicacao string `csv:"substituto_indicacao" json:"substituto_indicacao" bson:"substituto_indicacao"`
	DescricaoSubsInd    string `csv:"descricao_subs_ind" json:"descricao_subs_ind" bson:"descricao_subs_ind"`
}

// Field is one labelled value of a record as shown in the detail view.
type Field struct {
	Label    string
	Value    string
	Copyable bool
}

// Record is implemented by both record types so a rendered row can carry
// its source record to the detail view.
type Record interface {
	DetailFields() []Field
}

func (r TransferRecord) DetailFields() []Field {
	return []Field{
		{Label: "Segmento", Value: r.Segmento},
		{Label: "Código", Value: r.Codigo},
		{Label: "Produto", Value: r.Produto},
		{Label: "Telefone", Value: r.TransferenciaTelefone, Copyable: true},
		{Label: "Blip (Filas)", Value: r.TransferenciaBlip, Copyable: true},
	}
}

func (r PhaseoutRecord) DetailFields() []Field {
	return []Field{
		{Label: "Unidade", Value: r.Unidade},
		{Label: "Segmento", Value: r.Segmento},
		{Label: "Item", Value: r.Item},
		{Label: "Descrição", Value: r.Descricao},
		{Label: "Modelo", Value: r.Modelo},
		{Label: "Data Phase Out", Value: r.DataPhaseOut},
		{Label: "Substituto Direto", Value: r.SubstitutoDireto},
		{Label: "Desc. Subs. Dir.", Value: r.DescricaoSubsDir},
		{Label: "Substituto Indicação", Value: r.SubstitutoIndicacao},
		{Label: "Desc. Subs. Ind.", Value: r.DescricaoSubsInd},
	}
}
