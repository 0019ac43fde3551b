// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"fmt"

	"github.com/peculiardigitals/peculiar-go/internal/data"
	"github.com/peculiardigitals/peculiar-go/internal/form"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// Kind tags the entity a modal edits.
type Kind string

// Modal kinds, one per editable entity.
const (
	KindProject    Kind = "project"
	KindProduct    Kind = "product"
	KindBrand      Kind = "brand"
	KindBlog       Kind = "blog"
	KindPackage    Kind = "package"
	KindCategory   Kind = "category"
	KindCalculator Kind = "calculator"
)

// ModalForm is the open modal's typed state. Each entity kind carries its own
// form struct and its own submit, so adding a kind forces a submit
// implementation instead of extending a string switch.
type ModalForm interface {
	Kind() Kind
	// EditTarget returns the id being edited, or "" for the create flow.
	EditTarget() string
	submit(ctx context.Context, c *Controller) error
}

// removeByVisualIndex drops the screenshot at the position the admin sees.
// The gallery renders persisted URLs first, then pending selections, so an
// index below len(persisted) removes a stored URL while a higher one removes
// a file that was never uploaded.
func removeByVisualIndex(persisted []string, pending [][]byte, index int) ([]string, [][]byte) {
	if index < 0 {
		return persisted, pending
	}
	if index < len(persisted) {
		return append(persisted[:index:index], persisted[index+1:]...), pending
	}
	fi := index - len(persisted)
	if fi >= len(pending) {
		return persisted, pending
	}
	return persisted, append(pending[:fi:fi], pending[fi+1:]...)
}

// uploadPending resolves the pending files of a gallery: the new screenshots
// are uploaded and appended after the URLs that survived editing.
func uploadPending(ctx context.Context, c *Controller, bucket string, persisted []string, pending [][]byte) ([]string, error) {
	urls := append([]string{}, persisted...)
	for _, file := range pending {
		url, err := c.svc.UploadImage(ctx, bucket, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// ProjectForm edits one portfolio project.
type ProjectForm struct {
	EditID      string
	Title       string
	Client      string
	Category    string
	Description string
	// StackInput is the comma-joined editable text of the stack list.
	StackInput     string
	ImageURL       string
	Link           string
	Status         string
	Budget         string
	Progress       int
	DeliveryPeriod string
	Testimonial    string

	PersistedScreenshots []string
	PendingImage         []byte
	PendingScreenshots   [][]byte
}

func newProjectForm() *ProjectForm {
	return &ProjectForm{
		Status:               model.ProjectStatusInProgress,
		PersistedScreenshots: []string{},
	}
}

func editProjectForm(p model.Project) *ProjectForm {
	return &ProjectForm{
		EditID:               p.ID,
		Title:                p.Title,
		Client:               p.Client,
		Category:             p.Category,
		Description:          p.Description,
		StackInput:           form.JoinComma(p.Stack),
		ImageURL:             p.ImageURL,
		Link:                 p.Link,
		Status:               p.Status,
		Budget:               p.Budget,
		Progress:             p.Progress,
		DeliveryPeriod:       p.DeliveryPeriod,
		Testimonial:          p.Testimonial,
		PersistedScreenshots: append([]string{}, p.Screenshots...),
	}
}

// Kind implements ModalForm.
func (f *ProjectForm) Kind() Kind { return KindProject }

// EditTarget implements ModalForm.
func (f *ProjectForm) EditTarget() string { return f.EditID }

// AddScreenshots queues newly selected files for upload on submit.
func (f *ProjectForm) AddScreenshots(files ...[]byte) {
	f.PendingScreenshots = append(f.PendingScreenshots, files...)
}

// RemoveScreenshotAt removes the screenshot at the given visual position.
func (f *ProjectForm) RemoveScreenshotAt(index int) {
	f.PersistedScreenshots, f.PendingScreenshots = removeByVisualIndex(f.PersistedScreenshots, f.PendingScreenshots, index)
}

func (f *ProjectForm) submit(ctx context.Context, c *Controller) error {
	imageURL := f.ImageURL
	if len(f.PendingImage) > 0 {
		url, err := c.svc.UploadImage(ctx, data.BucketProjects, f.PendingImage)
		if err != nil {
			return err
		}
		imageURL = url
	}
	screenshots, err := uploadPending(ctx, c, data.BucketProjects, f.PersistedScreenshots, f.PendingScreenshots)
	if err != nil {
		return err
	}

	p := model.Project{
		Title:          f.Title,
		Client:         f.Client,
		Category:       f.Category,
		Description:    f.Description,
		Stack:          form.SplitComma(f.StackInput),
		ImageURL:       imageURL,
		Screenshots:    screenshots,
		Link:           f.Link,
		Status:         f.Status,
		Budget:         f.Budget,
		Progress:       f.Progress,
		DeliveryPeriod: f.DeliveryPeriod,
		Testimonial:    f.Testimonial,
	}
	if f.EditID != "" {
		_, err = c.svc.UpdateProject(ctx, f.EditID, p.Patch())
		return err
	}
	_, err = c.svc.AddProject(ctx, p)
	return err
}

// ProductForm edits one shop product.
type ProductForm struct {
	EditID      string
	Title       string
	Price       string
	Type        string
	Description string
	ImageURL    string
	// FeaturesInput is the comma-joined editable text of the features list.
	FeaturesInput string
	PurchaseLink  string
	DemoURL       string

	PersistedScreenshots []string
	PendingImage         []byte
	PendingScreenshots   [][]byte
}

func newProductForm() *ProductForm {
	return &ProductForm{
		Type:                 model.ProductTypeTemplate,
		PersistedScreenshots: []string{},
	}
}

func editProductForm(p model.Product) *ProductForm {
	return &ProductForm{
		EditID:               p.ID,
		Title:                p.Title,
		Price:                p.Price,
		Type:                 p.Type,
		Description:          p.Description,
		ImageURL:             p.ImageURL,
		FeaturesInput:        form.JoinComma(p.Features),
		PurchaseLink:         p.PurchaseLink,
		DemoURL:              p.DemoURL,
		PersistedScreenshots: append([]string{}, p.Screenshots...),
	}
}

// Kind implements ModalForm.
func (f *ProductForm) Kind() Kind { return KindProduct }

// EditTarget implements ModalForm.
func (f *ProductForm) EditTarget() string { return f.EditID }

// AddScreenshots queues newly selected files for upload on submit.
func (f *ProductForm) AddScreenshots(files ...[]byte) {
	f.PendingScreenshots = append(f.PendingScreenshots, files...)
}

// RemoveScreenshotAt removes the screenshot at the given visual position.
func (f *ProductForm) RemoveScreenshotAt(index int) {
	f.PersistedScreenshots, f.PendingScreenshots = removeByVisualIndex(f.PersistedScreenshots, f.PendingScreenshots, index)
}

func (f *ProductForm) submit(ctx context.Context, c *Controller) error {
	imageURL := f.ImageURL
	if len(f.PendingImage) > 0 {
		url, err := c.svc.UploadImage(ctx, data.BucketProducts, f.PendingImage)
		if err != nil {
			return err
		}
		imageURL = url
	}
	screenshots, err := uploadPending(ctx, c, data.BucketProducts, f.PersistedScreenshots, f.PendingScreenshots)
	if err != nil {
		return err
	}

	p := model.Product{
		Title:        f.Title,
		Price:        f.Price,
		Type:         f.Type,
		Description:  f.Description,
		ImageURL:     imageURL,
		PurchaseLink: f.PurchaseLink,
		Features:     form.SplitComma(f.FeaturesInput),
		DemoURL:      f.DemoURL,
		Screenshots:  screenshots,
	}
	if f.EditID != "" {
		_, err = c.svc.UpdateProduct(ctx, f.EditID, p.Patch())
		return err
	}
	_, err = c.svc.AddProduct(ctx, p)
	return err
}

// BrandForm edits one trust-strip brand.
type BrandForm struct {
	EditID      string
	Name        string
	LogoURL     string
	PendingLogo []byte
}

func newBrandForm() *BrandForm { return &BrandForm{} }

func editBrandForm(b model.Brand) *BrandForm {
	return &BrandForm{EditID: b.ID, Name: b.Name, LogoURL: b.LogoURL}
}

// Kind implements ModalForm.
func (f *BrandForm) Kind() Kind { return KindBrand }

// EditTarget implements ModalForm.
func (f *BrandForm) EditTarget() string { return f.EditID }

func (f *BrandForm) submit(ctx context.Context, c *Controller) error {
	logoURL := f.LogoURL
	if len(f.PendingLogo) > 0 {
		url, err := c.svc.UploadImage(ctx, data.BucketBrands, f.PendingLogo)
		if err != nil {
			return err
		}
		logoURL = url
	}
	b := model.Brand{Name: f.Name, LogoURL: logoURL}
	if f.EditID != "" {
		_, err := c.svc.UpdateBrand(ctx, f.EditID, b.Patch())
		return err
	}
	_, err := c.svc.AddBrand(ctx, b)
	return err
}

// BlogForm edits one article. Slug and read time left blank are derived by
// the data layer on submit; an explicit read time is kept as typed.
type BlogForm struct {
	EditID     string
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage string
	Author     string
	ReadTime   string
	// TagsInput is the comma-joined editable text of the tags list.
	TagsInput string

	PendingCover []byte
}

func newBlogForm() *BlogForm { return &BlogForm{} }

func editBlogForm(p model.BlogPost) *BlogForm {
	return &BlogForm{
		EditID:     p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Author:     p.Author,
		ReadTime:   p.ReadTime,
		TagsInput:  form.JoinComma(p.Tags),
	}
}

// Kind implements ModalForm.
func (f *BlogForm) Kind() Kind { return KindBlog }

// EditTarget implements ModalForm.
func (f *BlogForm) EditTarget() string { return f.EditID }

func (f *BlogForm) submit(ctx context.Context, c *Controller) error {
	coverImage := f.CoverImage
	if len(f.PendingCover) > 0 {
		// Covers share the projects bucket; there is no dedicated blog bucket.
		url, err := c.svc.UploadImage(ctx, data.BucketProjects, f.PendingCover)
		if err != nil {
			return err
		}
		coverImage = url
	}

	p := model.BlogPost{
		Title:      f.Title,
		Slug:       f.Slug,
		Excerpt:    f.Excerpt,
		Content:    f.Content,
		CoverImage: coverImage,
		Author:     f.Author,
		ReadTime:   f.ReadTime,
		Tags:       form.SplitComma(f.TagsInput),
	}
	if f.EditID != "" {
		_, err := c.svc.UpdateBlogPost(ctx, f.EditID, p.Patch())
		return err
	}
	_, err := c.svc.AddBlogPost(ctx, p)
	return err
}

// PackageForm edits one pricing package.
type PackageForm struct {
	EditID        string
	CategoryID    string
	Name          string
	Price         string
	DiscountPrice string
	Description   string
	// FeaturesInput is the newline-joined editable text of the features list.
	FeaturesInput string
	IsPopular     bool
}

func newPackageForm() *PackageForm { return &PackageForm{} }

func editPackageForm(p model.PricingPackage) *PackageForm {
	return &PackageForm{
		EditID:        p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Description:   p.Description,
		FeaturesInput: form.JoinLines(p.Features),
		IsPopular:     p.IsPopular,
	}
}

// Kind implements ModalForm.
func (f *PackageForm) Kind() Kind { return KindPackage }

// EditTarget implements ModalForm.
func (f *PackageForm) EditTarget() string { return f.EditID }

func (f *PackageForm) submit(ctx context.Context, c *Controller) error {
	p := model.PricingPackage{
		CategoryID:    f.CategoryID,
		Name:          f.Name,
		Price:         f.Price,
		DiscountPrice: f.DiscountPrice,
		Description:   f.Description,
		Features:      form.SplitLines(f.FeaturesInput),
		IsPopular:     f.IsPopular,
	}
	if f.EditID != "" {
		_, err := c.svc.UpdatePackage(ctx, f.EditID, p.Patch())
		return err
	}
	_, err := c.svc.AddPackage(ctx, p)
	return err
}

// CategoryForm edits one pricing category.
type CategoryForm struct {
	EditID    string
	Name      string
	SortOrder int
}

func newCategoryForm() *CategoryForm { return &CategoryForm{} }

func editCategoryForm(cat model.PricingCategory) *CategoryForm {
	return &CategoryForm{EditID: cat.ID, Name: cat.Name, SortOrder: cat.SortOrder}
}

// Kind implements ModalForm.
func (f *CategoryForm) Kind() Kind { return KindCategory }

// EditTarget implements ModalForm.
func (f *CategoryForm) EditTarget() string { return f.EditID }

func (f *CategoryForm) submit(ctx context.Context, c *Controller) error {
	cat := model.PricingCategory{Name: f.Name, SortOrder: f.SortOrder}
	if f.EditID != "" {
		_, err := c.svc.UpdatePricingCategory(ctx, f.EditID, cat.Patch())
		return err
	}
	_, err := c.svc.AddPricingCategory(ctx, cat)
	return err
}

// CalculatorForm edits one calculator line item.
type CalculatorForm struct {
	EditID   string
	Name     string
	Price    float64
	Category string
	IsActive bool
}

func newCalculatorForm() *CalculatorForm { return &CalculatorForm{IsActive: true} }

func editCalculatorForm(item model.CalculatorItem) *CalculatorForm {
	return &CalculatorForm{
		EditID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		IsActive: item.IsActive,
	}
}

// Kind implements ModalForm.
func (f *CalculatorForm) Kind() Kind { return KindCalculator }

// EditTarget implements ModalForm.
func (f *CalculatorForm) EditTarget() string { return f.EditID }

func (f *CalculatorForm) submit(ctx context.Context, c *Controller) error {
	item := model.CalculatorItem{
		Name:     f.Name,
		Price:    f.Price,
		Category: f.Category,
		IsActive: f.IsActive,
	}
	if f.EditID != "" {
		_, err := c.svc.UpdateCalculatorItem(ctx, f.EditID, item.Patch())
		return err
	}
	_, err := c.svc.AddCalculatorItem(ctx, item)
	return err
}

// newForm returns an empty create-flow form for the given kind.
func newForm(kind Kind) (ModalForm, error) {
	switch kind {
	case KindProject:
		return newProjectForm(), nil
	case KindProduct:
		return newProductForm(), nil
	case KindBrand:
		return newBrandForm(), nil
	case KindBlog:
		return newBlogForm(), nil
	case KindPackage:
		return newPackageForm(), nil
	case KindCategory:
		return newCategoryForm(), nil
	case KindCalculator:
		return newCalculatorForm(), nil
	}
	return nil, fmt.Errorf("unknown modal kind %q", kind)
}
