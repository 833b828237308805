package zoho

import "context"

// Solution is a knowledge-base answer.
type Solution struct {
	ID                 string `json:"id"`
	SolutionTitle      string `json:"solutionTitle"`
	SolutionNumber     string `json:"solutionNumber,omitempty"`
	Status             string `json:"status,omitempty"`
	ProductID          string `json:"productId,omitempty"`
	ProductName        string `json:"productName,omitempty"`
	Question           string `json:"question,omitempty"`
	Answer             string `json:"answer,omitempty"`
	AddToKnowledgeBase *bool  `json:"addToKnowledgeBase,omitempty"`
	NoOfComments       int    `json:"noOfComments,omitempty"`
	OwnerID            string `json:"ownerId,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

type SolutionInput struct {
	SolutionTitle      *string `json:"solutionTitle,omitempty"`
	Status             *string `json:"status,omitempty"`
	ProductID          *string `json:"productId,omitempty"`
	Question           *string `json:"question,omitempty"`
	Answer             *string `json:"answer,omitempty"`
	AddToKnowledgeBase *bool   `json:"addToKnowledgeBase,omitempty"`
}

var solutionsModule = module{apiName: "Solutions", label: "solution"}

var solutionFields = []payloadField[SolutionInput]{
	field("Solution_Title", func(in SolutionInput) interface{} { return opt(in.SolutionTitle) }).whenDefined(),
	field("Status", func(in SolutionInput) interface{} { return opt(in.Status) }),
	field("Product_Name", func(in SolutionInput) interface{} { return opt(in.ProductID) }).asRef().createOnly(),
	field("Question", func(in SolutionInput) interface{} { return opt(in.Question) }),
	field("Answer", func(in SolutionInput) interface{} { return opt(in.Answer) }),
	field("Add_to_Knowledge_Base", func(in SolutionInput) interface{} { return opt(in.AddToKnowledgeBase) }).whenDefined(),
}

func mapSolution(r Record) Solution {
	productID, productName := r.Ref("Product_Name")
	return Solution{
		ID:                 r.ID(),
		SolutionTitle:      r.String("Solution_Title"),
		SolutionNumber:     r.String("Solution_Number"),
		Status:             r.String("Status"),
		ProductID:          productID,
		ProductName:        productName,
		Question:           r.String("Question"),
		Answer:             r.String("Answer"),
		AddToKnowledgeBase: r.Bool("Add_to_Knowledge_Base"),
		NoOfComments:       r.Int("No_of_comments"),
		OwnerID:            r.RefID("Owner"),
		CreatedAt:          r.String("Created_Time"),
		UpdatedAt:          r.String("Modified_Time"),
	}
}

func (c *Client) ListSolutions(ctx context.Context, params PageParams) (*Page[Solution], error) {
	return listRecords(ctx, c, solutionsModule, params, mapSolution)
}

func (c *Client) GetSolution(ctx context.Context, id string) (*Solution, error) {
	return getRecord(ctx, c, solutionsModule, id, mapSolution)
}

func (c *Client) CreateSolution(ctx context.Context, in SolutionInput) (*Solution, error) {
	return createRecord(ctx, c, solutionsModule, buildPayload(in, solutionFields, opCreate), mapSolution)
}

func (c *Client) UpdateSolution(ctx context.Context, id string, in SolutionInput) (*Solution, error) {
	return updateRecord(ctx, c, solutionsModule, id, buildPayload(in, solutionFields, opUpdate), mapSolution)
}

func (c *Client) DeleteSolution(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, solutionsModule, id)
}

func (c *Client) SearchSolutions(ctx context.Context, params SearchParams) (*Page[Solution], error) {
	return searchRecords(ctx, c, solutionsModule, params, "", mapSolution)
}
